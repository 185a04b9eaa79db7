package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lifei6671/translator/cmd/translint/checker"
)

func main() {
	dir := flag.String("d", "./locales", "directory of message-set files (.yaml/.yml/.toml)")
	failOnIssue := flag.Bool("fail", false, "exit with code 1 if any issue found")
	flag.Parse()

	res, err := checker.CheckLocales(*dir)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	printResult(res)

	if *failOnIssue && res.HasIssues() {
		os.Exit(1)
	}
}

func printResult(res *checker.Result) {
	fmt.Println("=== TRANSLATION CHECK RESULT ===")
	fmt.Println("Languages:", res.Languages)
	fmt.Println("Total keys:", len(res.Keys))

	if len(res.TagWarnings) > 0 {
		fmt.Println("\nNon-BCP-47 language identifiers:")
		for _, lang := range res.TagWarnings {
			fmt.Println("  -", lang)
		}
	} else {
		fmt.Println("\nNon-BCP-47 language identifiers: None")
	}

	for _, key := range res.Keys {
		unused := res.UnusedPlaceholders[key]
		collisions := res.PrefixCollisions[key]
		if len(unused) == 0 && len(collisions) == 0 {
			continue
		}

		fmt.Printf("\n--- [%s] ---\n", key)
		if len(unused) > 0 {
			fmt.Println("Unused placeholders:")
			for _, name := range unused {
				fmt.Println("  -", name)
			}
		}
		if len(collisions) > 0 {
			fmt.Println("Prefix collisions (substitution depends on binding order):")
			for _, pair := range collisions {
				fmt.Println("  -", pair)
			}
		}
	}

	if !res.HasIssues() {
		fmt.Println("\nNo issues found.")
	}
}
