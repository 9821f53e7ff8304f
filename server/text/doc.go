// Package text implements string helpers shared by command handlers: quoting
// and dequoting, case insensitive comparisons, capitalization, formatting code
// handling and the presentation of booleans and lists in chat.
package text
