package domain

import (
	"fmt"
	"strings"
)

// Language identifies one of the recognized source languages.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
	LangCSharp     Language = "csharp"
	LangGo         Language = "go"
	LangRust       Language = "rust"
	LangPlaintext  Language = "plaintext"
)

// LanguageOption is one entry of the selectable language catalog.
type LanguageOption struct {
	Value Language `json:"value"`
	Label string   `json:"label"`
}

// SupportedLanguages is the ordered catalog offered to hosts for selection.
// The plaintext sentinel is not selectable.
var SupportedLanguages = []LanguageOption{
	{Value: LangPython, Label: "Python"},
	{Value: LangJavaScript, Label: "JavaScript"},
	{Value: LangTypeScript, Label: "TypeScript"},
	{Value: LangJava, Label: "Java"},
	{Value: LangCpp, Label: "C++"},
	{Value: LangCSharp, Label: "C#"},
	{Value: LangGo, Label: "Go"},
	{Value: LangRust, Label: "Rust"},
}

var languageAliases = map[string]Language{
	"py":         LangPython,
	"js":         LangJavaScript,
	"node":       LangJavaScript,
	"ts":         LangTypeScript,
	"c++":        LangCpp,
	"cxx":        LangCpp,
	"c#":         LangCSharp,
	"cs":         LangCSharp,
	"golang":     LangGo,
	"rs":         LangRust,
	"text":       LangPlaintext,
	"plain":      LangPlaintext,
	"plain text": LangPlaintext,
}

// ParseLanguage resolves a tag or a common alias (case-insensitive).
func ParseLanguage(s string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if lang, ok := languageAliases[key]; ok {
		return lang, nil
	}
	lang := Language(key)
	if lang == LangPlaintext || lang.IsSupported() {
		return lang, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
}

// IsSupported reports whether l is in SupportedLanguages.
func (l Language) IsSupported() bool {
	for _, opt := range SupportedLanguages {
		if opt.Value == l {
			return true
		}
	}
	return false
}

// Label returns the display name, or the raw tag for unknown values.
func (l Language) Label() string {
	for _, opt := range SupportedLanguages {
		if opt.Value == l {
			return opt.Label
		}
	}
	if l == LangPlaintext {
		return "Plain Text"
	}
	return string(l)
}

// CommentPrefix returns the line-comment token for l.
func (l Language) CommentPrefix() string {
	if l == LangPython {
		return "#"
	}
	return "//"
}

// Extension returns the conventional file extension for l, including the dot.
func (l Language) Extension() string {
	switch l {
	case LangPython:
		return ".py"
	case LangJavaScript:
		return ".js"
	case LangTypeScript:
		return ".ts"
	case LangJava:
		return ".java"
	case LangCpp:
		return ".cpp"
	case LangCSharp:
		return ".cs"
	case LangGo:
		return ".go"
	case LangRust:
		return ".rs"
	default:
		return ".txt"
	}
}

// LanguageForExtension maps a file extension (with or without the dot) back to a tag.
func LanguageForExtension(ext string) (Language, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch ext {
	case ".py":
		return LangPython, true
	case ".js", ".mjs", ".cjs", ".jsx":
		return LangJavaScript, true
	case ".ts", ".tsx":
		return LangTypeScript, true
	case ".java":
		return LangJava, true
	case ".cpp", ".cc", ".cxx", ".hpp", ".h":
		return LangCpp, true
	case ".cs":
		return LangCSharp, true
	case ".go":
		return LangGo, true
	case ".rs":
		return LangRust, true
	}
	return "", false
}
