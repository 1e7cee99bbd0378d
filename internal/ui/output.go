package ui

import (
	"fmt"
	"strings"
)

// Output helpers - use these for consistent styled output across commands.

// Title prints a styled title/header
func Title(text string) {
	fmt.Println(TitleStyle.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	fmt.Println(SuccessStyle.Render("✓ " + text))
}

// Error prints an error message
func Error(text string) {
	fmt.Println(ErrorStyle.Render("✗ " + text))
}

// Warning prints a warning message
func Warning(text string) {
	fmt.Println(WarningStyle.Render("! " + text))
}

// Dim prints dimmed/secondary text
func Dim(text string) {
	fmt.Println(DimStyle.Render("  " + text))
}

// Step prints a step instruction
func Step(text string) {
	fmt.Println(StepStyle.Render(text))
}

// Command prints a CLI command
func Command(text string) {
	fmt.Println(CommandStyle.Render(text))
}

// Box prints text in a bordered box
func Box(text string) {
	fmt.Println(BoxStyle.Render(text))
}

// Bold prints bold text
func Bold(text string) {
	fmt.Println(BoldStyle.Render(text))
}

// Code prints text styled as code
func Code(text string) {
	fmt.Println(CodeStyle.Render(text))
}

// Line prints an empty line
func Line() {
	fmt.Println()
}

// Print prints plain text
func Print(text string) {
	fmt.Println(text)
}

// Printf prints formatted plain text
func Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Indent returns text with indentation
func Indent(text string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
