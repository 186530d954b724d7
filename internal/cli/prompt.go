// Package cli drives the interactive console session and the serve command.
//
// Input validation and identity normalization live here, at the input
// boundary; the allocation engine never sees raw user input.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input stream ends. The session treats
// it as a graceful stop.
var ErrInputClosed = fmt.Errorf("input stream closed")

// Prompter reads validated values from an input stream, re-prompting on bad
// input instead of propagating errors past the boundary.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next input line, or ErrInputClosed at end of stream.
func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}

// NormalizeName strips non-alphabetic characters and uppercases the rest,
// producing the canonical identity form.
func NormalizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// ReadName prompts until a name survives normalization non-empty.
func (p *Prompter) ReadName(prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if name := NormalizeName(line); name != "" {
			return name, nil
		}
	}
}

// ReadYesNo prompts until the answer is exactly "yes" or "no".
func (p *Prompter) ReadYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes":
			return true, nil
		case "no":
			return false, nil
		}
	}
}

// ReadFee prompts until a valid non-negative decimal is supplied. Stray
// characters are stripped before parsing, so "£5.00" reads as 5.
func (p *Prompter) ReadFee(prompt string) (float64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, line)

		fee, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || fee < 0 {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return fee, nil
	}
}

// ReadRequest prompts for the next purchase target. done is true when the
// buyer types the stop word or the input stream ends.
func (p *Prompter) ReadRequest(prompt, stopWord string) (title string, done bool, err error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.readLine()
	if err != nil {
		return "", true, nil // EOF ends the session gracefully
	}

	title = strings.ToUpper(strings.TrimSpace(line))
	if strings.EqualFold(title, stopWord) {
		return "", true, nil
	}
	return title, false, nil
}
