package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	consts "github.com/khanhnv2901/headerhawk/internal/constants"
)

// promptForURLs reads URLs interactively from r, one per line or
// comma-separated within a line. A blank line (or EOF) ends input. Batch
// size enforcement happens later in the validator, not here.
func promptForURLs(r io.Reader) []string {
	fmt.Println(colorWarn(fmt.Sprintf("No URLs provided. Enter URLs (one per line or comma-separated, max %d).", consts.MaxURLs)))
	fmt.Println(colorWarn("Press Enter on an empty line when done:"))

	reader := bufio.NewReader(r)
	var urls []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		for _, part := range strings.Split(line, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
		if err != nil {
			break
		}
	}
	return urls
}
