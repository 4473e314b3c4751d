package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const prompt = "> "

var exitWords = []string{"exit", "quit", "종료"}

// repl reads one utterance per line and prints handle's answer until EOF,
// an exit word, or ctx is done. Handler errors are printed, not fatal.
func repl(ctx context.Context, in io.Reader, out io.Writer, handle func(context.Context, string) (string, error)) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if isExit(text) {
			return nil
		}

		reply, err := handle(ctx, text)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, reply)

		if ctx.Err() != nil {
			return nil
		}
	}
}

func isExit(text string) bool {
	for _, w := range exitWords {
		if strings.EqualFold(text, w) {
			return true
		}
	}
	return false
}
