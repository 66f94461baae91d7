package text_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/walteh/textclean/pkg/text"
)

func ExampleRegexReplacer_ReplaceText() {
	replacer := text.NewRegexReplacer()

	rules := []text.ReplacementRule{
		{
			Name:        "drop-helper",
			Pattern:     `func helper\(\) \{.*?\n\}`,
			Replacement: "// helper moved to util.Helper()",
		},
		text.CollapseBlankLinesRule,
	}

	content := strings.NewReader("package main\n\n\n\nfunc helper() {\n\treturn\n}\n")

	result, err := replacer.ReplaceText(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("%s", result.ModifiedContent)
	for _, r := range result.Rules {
		fmt.Printf("%s: %d\n", r.Name, r.Matches)
	}
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// package main
	//
	// // helper moved to util.Helper()
	// drop-helper: 1
	// collapse-blank-lines: 1
	// Was Modified: true
}

func ExampleRegexReplacer_ValidateRules() {
	replacer := text.NewRegexReplacer()

	rules := []text.ReplacementRule{
		{Pattern: "foo", Replacement: "bar"},
		{Pattern: "(unclosed", Replacement: "qux"},
	}

	err := replacer.ValidateRules(rules)
	fmt.Println(err != nil)

	// Output:
	// true
}
