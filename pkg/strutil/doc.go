// Package strutil provides stateless string helpers: bounded substring
// extraction, small normalisers and "parse or nothing" converters.
//
// Character offsets are counted in user-perceived characters (grapheme
// clusters), so "é" and a flag emoji each count as one character.
//
//	strutil.Substring("Hello, World!", optional.Some(2), optional.Some(7)) // "llo, W"
//	strutil.Substring("Hello, World!", optional.None[int](), optional.Some(4)) // "Hello"
//
// # Error handling
//
// Nothing in this package returns an error. Substring normalises invalid index
// combinations to "", and the To* converters return an empty optional.Option
// when the input cannot be converted.
package strutil
