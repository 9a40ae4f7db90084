// Package languages 提供语言注册表：文件名/后缀到语言的映射，以及语言的展示信息。
// 所有数据都是进程启动时初始化的只读表，可被并发读取而无需加锁。
package languages

// Language 是封闭的语言枚举。零值不代表任何语言。
type Language int

const (
	Assembly Language = iota + 1
	Astro
	Bash
	Bqn
	Brainfuck
	C
	Carbon
	Catrina
	Clojure
	CMake
	Co
	Cobol
	CoffeeScript
	Cognate
	CommonLisp
	Crystal
	CSharp
	Css
	Cue
	Cxx
	D
	Dart
	Dhall
	Elixir
	Elm
	Erlang
	Fortran
	FSharp
	Gleam
	Gn
	Go
	Grain
	GraphQL
	Gren
	Hare
	Haskell
	Html
	Idris
	Io
	Jai
	Jakt
	Java
	JavaScript
	Json
	Julia
	Koka
	Kotlin
	Llvm
	Lua
	Make
	Markdown
	Nim
	NuShell
	Oak
	ObjectiveC
	ObjectiveCxx
	OCaml
	Odin
	Pascal
	Perl
	Php
	Porth
	PowerShell
	Prolog
	PureScript
	Python
	Racket
	Raku
	Reason
	Ren
	ReScript
	Roc
	Ruby
	Rust
	Sass
	Scala
	Sql
	Svelte
	Swift
	Tcl
	Terraform
	Toml
	Turquoise
	TypeScript
	Unison
	V
	Val
	Vala
	Vale
	VisualBasic
	Vue
	WebAssembly
	Wren
	Xml
	Yall
	Yaml
	YueScript
	Zig

	languageCount = int(Zig)
)

// String 返回语言的展示名称，未注册的值返回 "Unknown"。
func (l Language) String() string {
	return l.Info().Name
}

// Valid 判断 l 是否为已注册语言。
func (l Language) Valid() bool {
	_, ok := infos[l]
	return ok
}

// Info 返回语言展示信息的副本，修改返回值不会影响注册表。
func (l Language) Info() Info {
	if !l.Valid() {
		return Info{Name: "Unknown"}
	}
	info := infos[l]
	if info.Color != nil {
		color := *info.Color
		info.Color = &color
	}
	return info
}
