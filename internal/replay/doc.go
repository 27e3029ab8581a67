// Package replay drives a combobox headlessly from a scripted list of input
// tokens and records what every event did.
//
// A script is a sequence of tokens such as
//
//	focus type:char down down enter
//
// Parse turns the tokens into Actions; Run dispatches them against a
// combobox and returns a Report holding one Step per dispatched event plus
// the final accessibility snapshot. Reports marshal to JSON and YAML.
//
// Supported tokens:
//
//	down, alt+down, up, alt+up, enter, tab, esc, home, end
//	click              click on the text field
//	focus, blur        focus changes
//	pick:<n>           click on filtered option n (0-based)
//	type:<text>        type text one character at a time
//	set:<text>         replace the whole field value at once
//	clear              same as set: with empty text
package replay
