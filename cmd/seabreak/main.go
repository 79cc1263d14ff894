// Command seabreak loads trained per-script LSTM models and prints the word
// boundaries it finds in a line of South-East-Asian text.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/seabreak/seabreak"
	"github.com/seabreak/seabreak/engine"
	"github.com/seabreak/seabreak/model"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("seabreak %s\n", version)
	case "break":
		if err := runBreak(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "seabreak:", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("seabreak - South-East-Asian word boundary detector")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                                     Show version")
	fmt.Println("  break <thai.sabin> <lao.sabin> <burmese.sabin> <khmer.sabin>")
	fmt.Println("                                               Read lines of text from")
	fmt.Println("                                               stdin and print the break")
	fmt.Println("                                               positions found in each")
}

func runBreak(paths []string) error {
	if len(paths) != 4 {
		return fmt.Errorf("break needs exactly 4 model paths (thai, lao, burmese, khmer), got %d", len(paths))
	}

	cache := engine.NewCache()
	for _, path := range paths {
		m, err := model.LoadFile(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		if err := cache.Register(m); err != nil {
			return fmt.Errorf("registering %s (script %s): %w", path, m.Script, err)
		}
	}

	dispatcher := seabreak.NewDispatcher(cache)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := []rune(scanner.Text())
		var breaks []int
		err := dispatcher.BreakSALine(text, 0, len(text), func(pos int) {
			breaks = append(breaks, pos)
		})
		if err != nil {
			return fmt.Errorf("breaking line: %w", err)
		}
		fmt.Println(breaks)
	}
	return scanner.Err()
}
