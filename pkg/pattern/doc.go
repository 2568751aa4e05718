// Package pattern compiles display templates for numeric inputs.
//
// A template is plain text with placeholders:
//
//	"{value}px"          one key
//	"{x}, {y}"           two keys
//	"{r} {g} {b,hidden}" three keys, the last one never rendered
//
// The same template drives both directions. Compile derives the ordered key
// list and a matcher that parses display text back into one capture group
// per placeholder; Format substitutes values into the template.
//
// # Literal Text
//
// By default literal template text is escaped before it is embedded into the
// matcher, so "{a}.{b}" only matches a literal dot. WithRawLiterals embeds
// the text unescaped, letting templates carry regular expression syntax of
// their own. Raw templates shift capture group indices if they add groups.
package pattern
