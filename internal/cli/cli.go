package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	userInputColor = color.New(color.FgWhite)
	botOutputColor = color.New(color.FgCyan)
	titleColor     = color.New(color.FgMagenta, color.Bold)
	separatorColor = color.New(color.FgHiBlack)
	fieldColor     = color.New(color.FgGreen)
	warningColor   = color.New(color.FgYellow)
	errorColor     = color.New(color.FgRed)
	promptColor    = color.New(color.FgHiBlue)

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	if leftWidth < 0 {
		leftWidth = 0
	}
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", max(width-len(title)-len(separator1), 0))
	output := fmt.Sprintf("%s%s%s", separator1, title, separator2)
	titleColor.Println(output)
}

// UserInput printed to cli.
func UserInput(text string, args ...any) {
	userInputColor.Printf(text, args...)
}

// BotOutput printed to cli. Without args, text is printed verbatim so raw
// reply content containing '%' does not trip Printf.
func BotOutput(text string, args ...any) {
	if len(args) == 0 {
		text = strings.ReplaceAll(text, "%", "%%")
	}
	botOutputColor.Printf(text, args...)
}

// Field prints a labeled value.
func Field(label string, value any) {
	fieldColor.Printf("%s: ", label)
	fmt.Printf("%v\n", value)
}

// Warning printed to cli.
func Warning(text string, args ...any) {
	warningColor.Printf(text+"\n", args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text+"\n", args...)
}

// PromptLine reads a single line of input.
func PromptLine(prompt string) (string, error) {
	rl, err := readline.New(promptColor.Sprint(prompt))
	if err != nil {
		return "", err
	}
	defer rl.Close()
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword reads a password without echoing it.
func PromptPassword(message string) (string, error) {
	password := ""
	question := &survey.Password{Message: message}
	if err := survey.AskOne(question, &password); err != nil {
		return "", err
	}
	return password, nil
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	surveyQuestion := &survey.Confirm{
		Message: question,
	}
	confirm := false
	survey.AskOne(surveyQuestion, &confirm)
	return confirm
}
