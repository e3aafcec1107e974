package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// linePrompter reads numbered choices from a plain line stream. It is used
// when stdin is not a terminal.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Choose(ctx context.Context) (menuAction, error) {
	fmt.Fprintln(p.out)
	for i, a := range menuOrder {
		fmt.Fprintf(p.out, "[%d] %s\n", i+1, menuLabels[a])
	}
	fmt.Fprint(p.out, "Enter choice: ")

	line, err := p.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(menuOrder) {
		return 0, errInvalidChoice
	}
	return menuOrder[n-1], nil
}

func (p *linePrompter) Path(ctx context.Context, def string) (string, error) {
	fmt.Fprintf(p.out, "Dataset path [%s]: ", def)
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *linePrompter) Show(content string) error {
	_, err := fmt.Fprint(p.out, content)
	return err
}

// readLine returns the next trimmed line. A final line without a newline
// is returned before io.EOF.
func (p *linePrompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
