package languages

import (
	"sort"
	"strings"
)

// Info 描述语言的展示信息。Color 为 nil 表示没有专属颜色。
type Info struct {
	Name  string
	Color *Color
}

// LanguageDescriptor 用于对外展示语言及其匹配规则。
type LanguageDescriptor struct {
	Language   Language
	Name       string
	Extensions []string
	FileNames  []string
}

// languageByFileName 只收录没有常规后缀的构建清单文件，按完整文件名精确匹配（区分大小写）。
var languageByFileName = map[string]Language{
	"CMakeLists.txt": CMake,
	"Makefile":       Make,
}

// languageByExt 的键不带点号，按原样精确匹配，不做大小写归一化。
var languageByExt = map[string]Language{
	"asm":     Assembly,
	"astro":   Astro,
	"b":       Brainfuck,
	"bqn":     Bqn,
	"c":       C,
	"carbon":  Carbon,
	"cbl":     Cobol,
	"cc":      Cxx,
	"cjs":     JavaScript,
	"cl":      CommonLisp,
	"clj":     Clojure,
	"co":      Co,
	"coffee":  CoffeeScript,
	"cog":     Cognate,
	"cpp":     Cxx,
	"cpp2":    Cxx,
	"cr":      Crystal,
	"cs":      CSharp,
	"css":     Css,
	"cts":     TypeScript,
	"cue":     Cue,
	"cxx":     Cxx,
	"d":       D,
	"dart":    Dart,
	"dhall":   Dhall,
	"elm":     Elm,
	"erl":     Erlang,
	"ex":      Elixir,
	"exs":     Elixir,
	"f":       Fortran,
	"f03":     Fortran,
	"f90":     Fortran,
	"f95":     Fortran,
	"for":     Fortran,
	"fs":      FSharp,
	"gleam":   Gleam,
	"gn":      Gn,
	"go":      Go,
	"gql":     GraphQL,
	"gr":      Grain,
	"gren":    Gren,
	"h":       C,
	"ha":      Hare,
	"hh":      Cxx,
	"hpp":     Cxx,
	"hs":      Haskell,
	"htm":     Html,
	"html":    Html,
	"hxx":     Cxx,
	"idr":     Idris,
	"io":      Io,
	"jai":     Jai,
	"jakt":    Jakt,
	"java":    Java,
	"jl":      Julia,
	"js":      JavaScript,
	"json":    Json,
	"jsonc":   Json,
	"jsx":     JavaScript,
	"kk":      Koka,
	"kt":      Kotlin,
	"kts":     Kotlin,
	"l":       CommonLisp,
	"lisp":    CommonLisp,
	"ll":      Llvm,
	"lsp":     CommonLisp,
	"lua":     Lua,
	"m":       ObjectiveC,
	"md":      Markdown,
	"mjs":     JavaScript,
	"mk":      Make,
	"ml":      OCaml,
	"mm":      ObjectiveCxx,
	"mts":     TypeScript,
	"nim":     Nim,
	"nu":      NuShell,
	"oak":     Oak,
	"odin":    Odin,
	"p6":      Raku,
	"pas":     Pascal,
	"php":     Php,
	"pl":      Perl,
	"pl6":     Raku,
	"pm":      Perl,
	"pm6":     Raku,
	"porth":   Porth,
	"pro":     Prolog,
	"ps1":     PowerShell,
	"purs":    PureScript,
	"py":      Python,
	"q":       Turquoise,
	"raku":    Raku,
	"rakumod": Raku,
	"rb":      Ruby,
	"re":      Reason,
	"ren":     Ren,
	"res":     ReScript,
	"rina":    Catrina,
	"rkt":     Racket,
	"roc":     Roc,
	"rs":      Rust,
	"s":       Assembly,
	"sass":    Sass,
	"scala":   Scala,
	"sh":      Bash,
	"sql":     Sql,
	"svelte":  Svelte,
	"swift":   Swift,
	"tcl":     Tcl,
	"tf":      Terraform,
	"toml":    Toml,
	"ts":      TypeScript,
	"tsx":     TypeScript,
	"u":       Unison,
	"v":       V,
	"val":     Val,
	"vala":    Vala,
	"vale":    Vale,
	"vb":      VisualBasic,
	"vue":     Vue,
	"wat":     WebAssembly,
	"wren":    Wren,
	"xml":     Xml,
	"yall":    Yall,
	"yaml":    Yaml,
	"yml":     Yaml,
	"yue":     YueScript,
	"zig":     Zig,
}

var infos = map[Language]Info{
	Assembly:     {Name: "Assembly"},
	Astro:        {Name: "Astro", Color: hex(0xa78bfa)},
	Bash:         {Name: "Bash", Color: rgb(50, 50, 50)},
	Bqn:          {Name: "BQN", Color: hex(0x2b7067)},
	Brainfuck:    {Name: "Brainfuck"},
	C:            {Name: "C", Color: rgb(40, 48, 126)},
	Carbon:       {Name: "Carbon"},
	Catrina:      {Name: "Catrina", Color: rgb(255, 105, 180)},
	Clojure:      {Name: "Clojure", Color: rgb(0, 112, 255)},
	CMake:        {Name: "CMake"},
	Co:           {Name: "Co"},
	Cobol:        {Name: "Cobol", Color: rgb(0, 112, 255)},
	CoffeeScript: {Name: "CoffeeScript", Color: hex(0x3e2723)},
	Cognate:      {Name: "Cognate"},
	CommonLisp:   {Name: "CommonLisp"},
	Crystal:      {Name: "Crystal", Color: hex(0x000000)},
	CSharp:       {Name: "C#", Color: rgb(5, 142, 12)},
	Css:          {Name: "CSS", Color: hex(0x563d7c)},
	Cue:          {Name: "Cue"},
	Cxx:          {Name: "C++", Color: rgb(25, 65, 122)},
	D:            {Name: "D", Color: hex(0xb03931)},
	Dart:         {Name: "Dart", Color: hex(0x40c4ff)},
	Dhall:        {Name: "Dhall"},
	Elixir:       {Name: "Elixir", Color: hex(0x4e2a8e)},
	Elm:          {Name: "Elm", Color: hex(0x60b5cc)},
	Erlang:       {Name: "Erlang", Color: hex(0xa2003e)},
	Fortran:      {Name: "Fortran"},
	FSharp:       {Name: "F#", Color: hex(0xb845fc)},
	Gleam:        {Name: "Gleam", Color: hex(0xffaff3)},
	Gn:           {Name: "gn"},
	Go:           {Name: "Go", Color: hex(0x00add8)},
	Grain:        {Name: "Grain", Color: rgb(255, 133, 14)},
	GraphQL:      {Name: "GraphQL", Color: hex(0xe10098)},
	Gren:         {Name: "Gren", Color: hex(0xff6600)},
	Hare:         {Name: "Hare", Color: hex(0x121415)},
	Haskell:      {Name: "Haskell", Color: hex(0x6144b3)},
	Html:         {Name: "HTML", Color: hex(0xdf6e3c)},
	Idris:        {Name: "Idris", Color: hex(0xc74350)},
	Io:           {Name: "Io", Color: hex(0xa9188d)},
	Jai:          {Name: "Jai"},
	Jakt:         {Name: "Jakt", Color: rgb(255, 0, 0)},
	Java:         {Name: "Java", Color: rgb(205, 55, 47)},
	JavaScript:   {Name: "JavaScript", Color: hex(0xf1e05a)},
	Json:         {Name: "JSON"},
	Julia:        {Name: "Julia", Color: hex(0xa270ba)},
	Koka:         {Name: "Koka"},
	Kotlin:       {Name: "Kotlin", Color: hex(0xa97bff)},
	Llvm:         {Name: "LLVM IR"},
	Lua:          {Name: "Lua", Color: hex(0x000077)},
	Make:         {Name: "Make"},
	Markdown:     {Name: "Markdown"},
	Nim:          {Name: "Nim", Color: hex(0xffc200)},
	NuShell:      {Name: "NuShell", Color: hex(0x3aa675)},
	Oak:          {Name: "Oak"},
	ObjectiveC:   {Name: "Objective-C"},
	ObjectiveCxx: {Name: "Objective-C++"},
	OCaml:        {Name: "OCaml", Color: hex(0xee6a1a)},
	Odin:         {Name: "Odin", Color: hex(0x3882d2)},
	Pascal:       {Name: "Pascal"},
	Perl:         {Name: "Perl", Color: hex(0x0073a1)},
	Php:          {Name: "PHP", Color: hex(0x4f5d95)},
	Porth:        {Name: "Porth"},
	PowerShell:   {Name: "PowerShell"},
	Prolog:       {Name: "Prolog"},
	PureScript:   {Name: "PureScript"},
	Python:       {Name: "Python", Color: hex(0x3776ab)},
	Racket:       {Name: "Racket"},
	Raku:         {Name: "Raku", Color: hex(0xd0dd2b)},
	Reason:       {Name: "Reason", Color: hex(0xdb4d3f)},
	Ren:          {Name: "Ren", Color: hex(0xdd5e36)},
	ReScript:     {Name: "ReScript", Color: hex(0xd55454)},
	Roc:          {Name: "Roc", Color: hex(0x7c59dd)},
	Ruby:         {Name: "Ruby", Color: hex(0xcc342d)},
	Rust:         {Name: "Rust", Color: hex(0xa72145)},
	Sass:         {Name: "Sass", Color: hex(0xcf649a)},
	Scala:        {Name: "Scala", Color: hex(0xc6422f)},
	Sql:          {Name: "SQL", Color: hex(0x336790)},
	Svelte:       {Name: "Svelte", Color: hex(0xe44d26)},
	Swift:        {Name: "Swift", Color: hex(0xf05138)},
	Tcl:          {Name: "Tcl"},
	Terraform:    {Name: "Terraform", Color: hex(0x844fba)},
	Toml:         {Name: "TOML"},
	Turquoise:    {Name: "Turquoise", Color: hex(0x90eada)},
	TypeScript:   {Name: "TypeScript", Color: hex(0x3178c6)},
	Unison:       {Name: "Unison", Color: rgb(118, 207, 143)},
	V:            {Name: "V"},
	Val:          {Name: "Val", Color: rgb(0, 119, 179)},
	Vala:         {Name: "Vala", Color: hex(0x7239b3)},
	Vale:         {Name: "Vale"},
	VisualBasic:  {Name: "Visual Basic"},
	Vue:          {Name: "Vue", Color: hex(0x41b883)},
	WebAssembly:  {Name: "WebAssembly", Color: hex(0x654ff0)},
	Wren:         {Name: "Wren", Color: hex(0x383838)},
	Xml:          {Name: "XML"},
	Yall:         {Name: "Y'all", Color: hex(0xff8f77)},
	Yaml:         {Name: "YAML"},
	YueScript:    {Name: "YueScript", Color: hex(0xb7ae8f)},
	Zig:          {Name: "Zig", Color: rgb(235, 168, 66)},
}

// FromFileName 按完整文件名匹配语言。
func FromFileName(name string) (Language, bool) {
	language, ok := languageByFileName[name]
	return language, ok
}

// FromExtension 按后缀匹配语言，ext 可带或不带前导点号。
func FromExtension(ext string) (Language, bool) {
	language, ok := languageByExt[strings.TrimPrefix(ext, ".")]
	return language, ok
}

// Classify 先匹配完整文件名，再回退到后缀匹配。
// 两者都无法识别时返回 false，这属于“无法分类”而不是错误。
func Classify(fileName string, ext string) (Language, bool) {
	if language, ok := FromFileName(fileName); ok {
		return language, true
	}
	if ext == "" {
		return 0, false
	}
	return FromExtension(ext)
}

// FromName 按展示名称匹配语言，不区分大小写。
func FromName(name string) (Language, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	for language, info := range infos {
		if strings.EqualFold(info.Name, name) {
			return language, true
		}
	}
	return 0, false
}

// Resolve 解析命令行里的语言标识：先按名称，再按后缀。
// 例如 "TypeScript"、"typescript" 和 "ts" 都解析为 TypeScript。
func Resolve(identifier string) (Language, bool) {
	if language, ok := FromName(identifier); ok {
		return language, true
	}
	return FromExtension(strings.TrimSpace(identifier))
}

// All 返回全部语言，按枚举顺序排列。
func All() []Language {
	result := make([]Language, 0, languageCount)
	for language := Language(1); int(language) <= languageCount; language++ {
		result = append(result, language)
	}
	return result
}

// Languages 返回已注册语言清单，按名称排序。
func Languages() []LanguageDescriptor {
	result := make([]LanguageDescriptor, 0, languageCount)
	for _, language := range All() {
		result = append(result, LanguageDescriptor{
			Language:   language,
			Name:       language.String(),
			Extensions: ExtensionsForLanguage(language),
			FileNames:  fileNamesForLanguage(language),
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀（带点号，已排序）。
func ExtensionsForLanguage(language Language) []string {
	var extensions []string
	for ext, candidate := range languageByExt {
		if candidate == language {
			extensions = append(extensions, "."+ext)
		}
	}
	sort.Strings(extensions)
	return extensions
}

func fileNamesForLanguage(language Language) []string {
	var names []string
	for name, candidate := range languageByFileName {
		if candidate == language {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
