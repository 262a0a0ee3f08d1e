package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	lfsrxVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	lfsrx := NewAppBuild("lfsrx", "cmd/lfsrx", lfsrxVersion)
	lfsrx.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", lfsrxVersion).
			CgoEnabled(false)
	})
	lfsrx.Variant("windows", "amd64")
	lfsrx.Variant("linux", "amd64")
	lfsrx.Variant("linux", "arm64")
	lfsrx.Variant("darwin", "amd64")
	lfsrx.Variant("darwin", "arm64")
	b.ImportApp(lfsrx)

	b.Execute()
}
