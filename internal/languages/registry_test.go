package languages

import (
	"strings"
	"testing"
)

// TestClassifyByFileName 验证文件名优先于后缀匹配。
func TestClassifyByFileName(t *testing.T) {
	cases := []struct {
		name     string
		ext      string
		expected Language
		ok       bool
	}{
		{name: "", ext: "", ok: false},
		{name: "CMakeLists.txt", ext: ".txt", expected: CMake, ok: true},
		{name: "Makefile", ext: "", expected: Make, ok: true},
		{name: "main.rs", ext: ".rs", expected: Rust, ok: true},
		{name: "NotCMake.txt", ext: ".txt", ok: false},
		{name: "README.md", ext: ".md", expected: Markdown, ok: true},
		{name: "main.zig", ext: ".zig", expected: Zig, ok: true},
		{name: "makefile", ext: "", ok: false},
	}

	for _, item := range cases {
		language, ok := Classify(item.name, item.ext)
		if ok != item.ok {
			t.Fatalf("classify %q: expected ok=%v, got %v", item.name, item.ok, ok)
		}
		if ok && language != item.expected {
			t.Fatalf("classify %q: expected %s, got %s", item.name, item.expected, language)
		}
	}
}

// TestExtensionIsCaseSensitive 验证后缀按原样匹配，不做大小写归一化。
func TestExtensionIsCaseSensitive(t *testing.T) {
	if _, ok := FromExtension("RS"); ok {
		t.Fatalf("expected upper-case extension to be unknown")
	}
	if language, ok := FromExtension(".rs"); !ok || language != Rust {
		t.Fatalf("expected .rs to map to Rust, got %v %v", language, ok)
	}
}

// TestSharedExtensions 验证多个后缀汇聚到同一语言。
func TestSharedExtensions(t *testing.T) {
	for _, ext := range []string{"cc", "cpp", "cxx", "hpp", "hh", "hxx", "cpp2"} {
		if language, _ := FromExtension(ext); language != Cxx {
			t.Fatalf("expected %s to map to C++, got %s", ext, language)
		}
	}
	for _, ext := range []string{"js", "jsx", "mjs", "cjs"} {
		if language, _ := FromExtension(ext); language != JavaScript {
			t.Fatalf("expected %s to map to JavaScript, got %s", ext, language)
		}
	}
}

// TestResolveIdentifiers 验证命令行语言标识的解析顺序：名称优先，后缀兜底。
func TestResolveIdentifiers(t *testing.T) {
	cases := map[string]Language{
		"TypeScript":   TypeScript,
		"typescript":   TypeScript,
		"ts":           TypeScript,
		"BQN":          Bqn,
		"gleam":        Gleam,
		"rust":         Rust,
		"md":           Markdown,
		"toml":         Toml,
		"c#":           CSharp,
		"visual basic": VisualBasic,
	}

	for identifier, expected := range cases {
		language, ok := Resolve(identifier)
		if !ok || language != expected {
			t.Fatalf("resolve %q: expected %s, got %s (ok=%v)", identifier, expected, language, ok)
		}
	}

	if _, ok := Resolve("definitely-not-a-language"); ok {
		t.Fatalf("expected unknown identifier to fail")
	}
}

// TestEveryLanguageHasInfo 确认枚举中每个值都有展示信息，且名称唯一。
func TestEveryLanguageHasInfo(t *testing.T) {
	seen := make(map[string]Language)
	for _, language := range All() {
		info := language.Info()
		if info.Name == "" {
			t.Fatalf("language %d has no display name", language)
		}
		if previous, ok := seen[strings.ToLower(info.Name)]; ok {
			t.Fatalf("duplicate display name %q for %d and %d", info.Name, previous, language)
		}
		seen[strings.ToLower(info.Name)] = language
	}

	if len(infos) != len(All()) {
		t.Fatalf("info table has %d entries, enum has %d", len(infos), len(All()))
	}

	for ext, language := range languageByExt {
		if !language.Valid() {
			t.Fatalf("extension %s maps to unregistered language %d", ext, language)
		}
	}
}

// TestColorHex 验证颜色的十六进制格式。
func TestColorHex(t *testing.T) {
	if got := (Color{}).Hex(); got != "#000000" {
		t.Fatalf("unexpected hex: %s", got)
	}
	if got := hex(0xbeeeef).Hex(); got != "#beeeef" {
		t.Fatalf("unexpected hex: %s", got)
	}
	if Go.Info().Color == nil || Go.Info().Color.Hex() != "#00add8" {
		t.Fatalf("unexpected Go color: %+v", Go.Info().Color)
	}
	if Markdown.Info().Color != nil {
		t.Fatalf("expected Markdown to have no color")
	}
}

// TestInfoReturnsCopy 确认调用方修改 Info 不会影响全局注册表。
func TestInfoReturnsCopy(t *testing.T) {
	info := Go.Info()
	info.Name = "Gopher"
	info.Color.R = 0xff

	if got := Go.String(); got != "Go" {
		t.Fatalf("registry name changed to %s", got)
	}
	if got := Go.Info().Color.Hex(); got != "#00add8" {
		t.Fatalf("registry color changed to %s", got)
	}
	if got := Language(0).Info(); got.Name != "Unknown" || got.Color != nil {
		t.Fatalf("unexpected info for unregistered language: %+v", got)
	}
}

// TestLanguagesListing 确认语言清单按名称排序且包含文件名规则。
func TestLanguagesListing(t *testing.T) {
	listing := Languages()
	if len(listing) != len(All()) {
		t.Fatalf("unexpected language count: %d", len(listing))
	}
	for i := 1; i < len(listing); i++ {
		if listing[i-1].Name > listing[i].Name {
			t.Fatalf("listing not sorted at %d: %s > %s", i, listing[i-1].Name, listing[i].Name)
		}
	}

	for _, item := range listing {
		if item.Language == Make {
			if len(item.FileNames) != 1 || item.FileNames[0] != "Makefile" {
				t.Fatalf("unexpected Make file names: %v", item.FileNames)
			}
			if len(item.Extensions) != 1 || item.Extensions[0] != ".mk" {
				t.Fatalf("unexpected Make extensions: %v", item.Extensions)
			}
		}
	}
}
