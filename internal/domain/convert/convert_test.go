package convert_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/convert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pyIsEven = "def is_even(n):\n    return n % 2 != 0"

func convertOK(t *testing.T, code string, from, to domain.Language) string {
	t.Helper()
	out, ok := convert.Convert(code, from, to)
	require.True(t, ok, "pair %s->%s should be supported", from, to)
	return out
}

func TestConvert_PythonToJavaScript(t *testing.T) {
	out := convertOK(t, pyIsEven, domain.LangPython, domain.LangJavaScript)
	assert.Equal(t, "function isEven(n) {\n  return n % 2 === 0;\n}", out)
}

func TestConvert_PythonToTypeScript(t *testing.T) {
	out := convertOK(t, pyIsEven, domain.LangPython, domain.LangTypeScript)
	assert.Equal(t, "function isEven(n: number): boolean {\n  return n % 2 === 0;\n}", out)
}

func TestConvert_PythonToJava(t *testing.T) {
	out := convertOK(t, pyIsEven, domain.LangPython, domain.LangJava)
	want := strings.Join([]string{
		"public class Main {",
		"    public static boolean isEven(int n) {",
		"        return n % 2 == 0;",
		"    }",
		"",
		"    public static void main(String[] args) {",
		"        // entry point",
		"    }",
		"}",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestConvert_PythonToCpp(t *testing.T) {
	out := convertOK(t, pyIsEven, domain.LangPython, domain.LangCpp)
	want := strings.Join([]string{
		"#include <iostream>",
		"#include <string>",
		"#include <vector>",
		"",
		"bool is_even(int n) {",
		"    return n % 2 == 0;",
		"}",
		"",
		"int main() {",
		"    // entry point",
		"    return 0;",
		"}",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestConvert_JavaScriptToPython(t *testing.T) {
	out := convertOK(t, "function isEven(n) {\n  return n % 2 !== 0;\n}", domain.LangJavaScript, domain.LangPython)
	assert.Equal(t, "def is_even(n):\n    return n % 2 == 0", out)
}

func TestConvert_TypeScriptToPython(t *testing.T) {
	out := convertOK(t, "function addTwoNumbers(a: number, b: number): number {\n  return a + b;\n}", domain.LangTypeScript, domain.LangPython)
	assert.Equal(t, "def add_two_numbers(a, b):\n    return a + b", out)
}

func TestConvert_JavaToPython(t *testing.T) {
	code := "public class Main {\n    public static boolean isEven(int n) {\n        return n % 2 != 0;\n    }\n}"
	out := convertOK(t, code, domain.LangJava, domain.LangPython)
	assert.Equal(t, "class Main:\n    def is_even(n):\n        return n % 2 == 0", out)
}

func TestConvert_CppToPython(t *testing.T) {
	code := "#include <iostream>\nusing namespace std;\n\nbool is_even(int n) {\n    return n % 2 != 0;\n}"
	out := convertOK(t, code, domain.LangCpp, domain.LangPython)
	assert.Equal(t, "def is_even(n):\n    return n % 2 == 0", out)
}

func TestConvert_JavaScriptToTypeScript(t *testing.T) {
	out := convertOK(t, "const add = (a, b) => {\n  return a + b;\n};", domain.LangJavaScript, domain.LangTypeScript)
	assert.Equal(t, "const add = (a: number, b: number): number => {\n  return a + b;\n};", out)
}

func TestConvert_TypeScriptToJavaScript(t *testing.T) {
	out := convertOK(t, "function isEven(n: number): boolean {\n  return n % 2 === 0;\n}", domain.LangTypeScript, domain.LangJavaScript)
	assert.Equal(t, "function isEven(n) {\n  return n % 2 === 0;\n}", out)
}

func TestConvert_TypeScriptDropsTypeOnlyLines(t *testing.T) {
	code := "type Id = number;\nconst id: Id = 7;\nconst name = value as string;"
	out := convertOK(t, code, domain.LangTypeScript, domain.LangJavaScript)
	assert.Equal(t, "const id = 7;\nconst name = value;", out)
}

func TestConvert_ControlFlowToBraces(t *testing.T) {
	code := strings.Join([]string{
		"def classify(n):",
		"    if n > 0:",
		`        return "positive"`,
		"    elif n < 0:",
		`        return "negative"`,
		"    else:",
		`        return "zero"`,
	}, "\n")
	want := strings.Join([]string{
		"function classify(n) {",
		"  if (n > 0) {",
		`    return "positive";`,
		"  } else if (n < 0) {",
		`    return "negative";`,
		"  } else {",
		`    return "zero";`,
		"  }",
		"}",
	}, "\n")
	assert.Equal(t, want, convertOK(t, code, domain.LangPython, domain.LangJavaScript))
}

func TestConvert_ControlFlowToColons(t *testing.T) {
	code := "function sign(n) {\n  if (n > 0) {\n    return 1;\n  } else {\n    return -1;\n  }\n}"
	want := "def sign(n):\n    if n > 0:\n        return 1\n    else:\n        return -1"
	assert.Equal(t, want, convertOK(t, code, domain.LangJavaScript, domain.LangPython))
}

func TestConvert_RangeLoop(t *testing.T) {
	code := "def total(xs):\n    s = 0\n    for i in range(len(xs)):\n        s += xs[i]\n    return s"
	want := "function total(xs) {\n  s = 0;\n  for (let i = 0; i < xs.length; i++) {\n    s += xs[i];\n  }\n  return s;\n}"
	assert.Equal(t, want, convertOK(t, code, domain.LangPython, domain.LangJavaScript))

	cpp := convertOK(t, code, domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, "    for (int i = 0; i < xs.size(); i++) {\n        s += xs[i];\n    }")
	assert.NotContains(t, cpp, "range(")

	from := convertOK(t, "def tail(xs):\n    for i in range(1, len(xs)):\n        print(xs[i])", domain.LangPython, domain.LangCpp)
	assert.Contains(t, from, "for (int i = 1; i < xs.size(); i++) {")
}

func TestConvert_CommentsAndInterpolation(t *testing.T) {
	out := convertOK(t, "# helper\nx = 1  # one\nprint(f\"value {x}\")", domain.LangPython, domain.LangJavaScript)
	assert.Equal(t, "// helper\nx = 1;  // one\nconsole.log(`value ${x}`);", out)

	back := convertOK(t, "console.log(`hi ${name}`);", domain.LangJavaScript, domain.LangPython)
	assert.Equal(t, `print(f"hi {name}")`, back)
}

func TestConvert_EmptyBodies(t *testing.T) {
	assert.Equal(t, "function noop() {\n}", convertOK(t, "def noop():\n    pass", domain.LangPython, domain.LangJavaScript))
	assert.Equal(t, "def noop():\n    pass", convertOK(t, "function noop() {\n}", domain.LangJavaScript, domain.LangPython))
}

func TestConvert_Unsupported(t *testing.T) {
	_, ok := convert.Convert("fn main() {}", domain.LangRust, domain.LangGo)
	assert.False(t, ok)

	_, ok = convert.Convert(pyIsEven, domain.LangPython, domain.LangPython)
	assert.False(t, ok, "identity pairs have no pipeline")
}

func TestPairs(t *testing.T) {
	pairs := convert.Pairs()
	require.Len(t, pairs, 10)
	assert.Equal(t, convert.Pair{From: domain.LangCpp, To: domain.LangPython}, pairs[0])
	for _, p := range pairs {
		assert.NotEqual(t, p.From, p.To)
		assert.True(t, convert.Supported(p.From, p.To), p.String())
	}
}

func TestConvert_BracesBalanced(t *testing.T) {
	code := strings.Join([]string{
		"def scan(xs):",
		"    for x in xs:",
		"        while x > 0:",
		"            if x % 2 == 0:",
		"                x = x - 2",
		"            else:",
		"                x = x - 1",
		"    return None",
	}, "\n")
	for _, to := range []domain.Language{domain.LangJavaScript, domain.LangTypeScript, domain.LangJava, domain.LangCpp} {
		out := convertOK(t, code, domain.LangPython, to)
		assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"), "unbalanced %s output:\n%s", to, out)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	for _, p := range convert.Pairs() {
		code := pyIsEven
		if p.From != domain.LangPython {
			code = "function isEven(n) {\n  return n % 2 !== 0;\n}"
		}
		first, _ := convert.Convert(code, p.From, p.To)
		second, _ := convert.Convert(code, p.From, p.To)
		assert.Equal(t, first, second, p.String())
	}
}

func TestConvert_ParityFixedInEveryPair(t *testing.T) {
	for _, p := range convert.Pairs() {
		code := pyIsEven
		if p.From != domain.LangPython {
			code = "function isEven(n) {\n  return n % 2 !== 0;\n}"
		}
		out, _ := convert.Convert(code, p.From, p.To)
		assert.NotContains(t, out, "% 2 != 0", p.String())
		assert.NotContains(t, out, "% 2 !== 0", p.String())
	}
}

func TestConvert_NamingStyles(t *testing.T) {
	js := convertOK(t, "def sum_of_squares(a, b):\n    return a * a + b * b", domain.LangPython, domain.LangJavaScript)
	assert.Equal(t, "function sumOfSquares(a, b) {\n  return a * a + b * b;\n}", js)

	ts := convertOK(t, "def sum_of_squares(a, b):\n    return a * a + b * b", domain.LangPython, domain.LangTypeScript)
	assert.True(t, strings.HasPrefix(ts, "function sumOfSquares(a: number, b: number): number {"), ts)

	cpp := convertOK(t, "def _helper(x):\n    return x", domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, "auto _helper(auto x) {")
}

func TestConvert_BlankLinesKeepBlocks(t *testing.T) {
	sign := "def sign(n):\n    if n < 0:\n        return -1\n\n    return 1"
	pair := "def first():\n    return 1\n\ndef second():\n    return 2"

	assert.Equal(t,
		"function sign(n) {\n  if (n < 0) {\n    return -1;\n  }\n\n  return 1;\n}",
		convertOK(t, sign, domain.LangPython, domain.LangJavaScript))
	assert.Equal(t,
		"function first() {\n  return 1;\n}\n\nfunction second() {\n  return 2;\n}",
		convertOK(t, pair, domain.LangPython, domain.LangJavaScript))

	tests := []struct {
		name string
		code string
	}{
		{"blank line after return", sign},
		{"blank line between functions", pair},
		{"blank lines inside loop", "def walk(xs):\n    for x in xs:\n        y = x\n\n        print(y)\n\n    return None"},
	}
	for _, tt := range tests {
		for _, to := range []domain.Language{domain.LangJavaScript, domain.LangTypeScript, domain.LangJava, domain.LangCpp} {
			t.Run(tt.name+"/"+string(to), func(t *testing.T) {
				out := convertOK(t, tt.code, domain.LangPython, to)
				assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"), out)
				for _, l := range strings.Split(out, "\n") {
					assert.NotEqual(t, ";", strings.TrimSpace(l), out)
				}
			})
		}
	}

	cpp := convertOK(t, sign, domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, "        return -1;\n    }\n\n    return 1;\n}")
}

func TestConvert_SourceBracesKept(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{
			name: "object literal",
			code: "function f() {\n  const o = {\n    a: 1\n  };\n  return o;\n}",
			want: "def f():\n    o = {\n        a: 1\n    }\n    return o",
		},
		{
			name: "callback",
			code: "function f(xs) {\n  xs.forEach((x) => {\n    console.log(x);\n  });\n  return 1;\n}",
			want: "def f(xs):\n    xs.forEach((x) => {\n        print(x)\n    })\n    return 1",
		},
		{
			name: "callback inside if",
			code: "function f(xs) {\n  if (xs) {\n    xs.forEach((x) => {\n      console.log(x);\n    });\n  }\n  return 1;\n}",
			want: "def f(xs):\n    if xs:\n        xs.forEach((x) => {\n            print(x)\n        })\n    return 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertOK(t, tt.code, domain.LangJavaScript, domain.LangPython))
		})
	}
}

func TestConvert_CompoundInterpolation(t *testing.T) {
	code := "def show(a, b):\n    print(f\"Sum: {a + b} of {a}\")"

	java := convertOK(t, code, domain.LangPython, domain.LangJava)
	assert.Contains(t, java, `System.out.println("Sum: " + (a + b) + " of " + a);`)

	cpp := convertOK(t, code, domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, `std::cout << "Sum: " + (a + b) + " of " + a << std::endl;`)

	js := convertOK(t, code, domain.LangPython, domain.LangJavaScript)
	assert.Contains(t, js, "console.log(`Sum: ${a + b} of ${a}`);")

	sized := convertOK(t, "print(f\"n={len(xs)}\")", domain.LangPython, domain.LangJava)
	assert.Contains(t, sized, `System.out.println("n=" + xs.length);`)
}

func TestConvert_StringsLeftAlone(t *testing.T) {
	tests := []struct {
		name string
		code string
		to   domain.Language
		want string
	}{
		{"hash and keyword in string", `print("a # b or c")`, domain.LangJavaScript, `console.log("a # b or c");`},
		{"True in single quotes", `print('True and None')`, domain.LangJavaScript, `console.log('True and None');`},
		{"comment after string", `x = "not this"  # but or this`, domain.LangJavaScript, `x = "not this";  // but || this`},
		{"url", `print("http://example.com")`, domain.LangJavaScript, `console.log("http://example.com");`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convertOK(t, tt.code, domain.LangPython, tt.to))
		})
	}
}

func TestConvert_IdentityComparisons(t *testing.T) {
	code := "def check(x):\n    if x is not None:\n        return x\n    if x is None:\n        return 0"

	js := convertOK(t, code, domain.LangPython, domain.LangJavaScript)
	assert.Contains(t, js, "if (x !== null) {")
	assert.Contains(t, js, "if (x === null) {")
	assert.NotContains(t, js, " is ")

	java := convertOK(t, code, domain.LangPython, domain.LangJava)
	assert.Contains(t, java, "if (x != null) {")
	assert.Contains(t, java, "if (x == null) {")

	cpp := convertOK(t, code, domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, "if (x != nullptr) {")
}

func TestConvert_TopLevelStatementsInEntryPoint(t *testing.T) {
	java := convertOK(t, "x = 5\nprint(x)", domain.LangPython, domain.LangJava)
	assert.Equal(t, strings.Join([]string{
		"public class Main {",
		"    public static void main(String[] args) {",
		"        x = 5;",
		"        System.out.println(x);",
		"    }",
		"}",
	}, "\n"), java)

	code := "# adds one\ndef add_one(n):\n    return n + 1\n\nprint(add_one(4))"
	mixed := convertOK(t, code, domain.LangPython, domain.LangJava)
	assert.Equal(t, strings.Join([]string{
		"public class Main {",
		"    // adds one",
		"    public static int addOne(int n) {",
		"        return n + 1;",
		"    }",
		"",
		"    public static void main(String[] args) {",
		"        System.out.println(addOne(4));",
		"    }",
		"}",
	}, "\n"), mixed)

	cpp := convertOK(t, code, domain.LangPython, domain.LangCpp)
	assert.Contains(t, cpp, "int main() {\n    std::cout << add_one(4) << std::endl;\n    return 0;\n}")
	assert.Contains(t, cpp, "// adds one\nint add_one(int n) {")
}
