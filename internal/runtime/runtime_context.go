package runtime

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/meshstack-ai/mesh-cli/internal/settings"
)

type Context struct {
	Logger   *zerolog.Logger
	Viper    *viper.Viper
	Settings *settings.Settings
}

func NewContext(logger *zerolog.Logger, viper *viper.Viper) *Context {
	return &Context{
		Logger: logger,
		Viper:  viper,
	}
}

func (ctx *Context) AttachSettings() error {
	var err error

	ctx.Settings, err = settings.New(ctx.Logger, ctx.Viper)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	return nil
}
