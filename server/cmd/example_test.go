package cmd_test

import (
	"fmt"

	"github.com/df-mc/pluginapi/server/cmd"
	"github.com/go-gl/mathgl/mgl64"
)

func ExampleContext_FindQuoted() {
	ctx, _ := cmd.ParseLine(`/msg "Steve Two" hello there`, nil)
	span, ok := ctx.FindQuoted()
	fmt.Println(ok, span.String(), span.Start(), span.End())
	// Output: true Steve Two 0 1
}

func ExampleParseFlags() {
	silent := cmd.MustFlag("silent")
	s := cmd.ParseFlags([]string{"Steve", "-gS", "--silent", "--loud"}, nil, cmd.FlagGUI, silent)
	fmt.Println(s.Passed("gui"), s.Passed("silent"), s.UnknownList())
	// Output: true true S, loud
}

func ExampleContext_Position() {
	ctx := cmd.NewContext("tp", []string{"~", "~10", "-4"}, nil)
	pos, _ := ctx.Position(0, mgl64.Vec3{8, 64, 8})
	fmt.Println(pos.X(), pos.Y(), pos.Z())
	// Output: 8 74 -4
}
