package settings

type Flag struct {
	Name  string
	Short string
}

type flagNames struct {
	ProjectRoot Flag
	CliEnvFile  Flag
	Verbose     Flag
}

var Flags = flagNames{
	ProjectRoot: Flag{"project-root", "R"},
	CliEnvFile:  Flag{"env", "e"},
	Verbose:     Flag{"verbose", "v"},
}
