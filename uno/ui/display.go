package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ratel-online/uno/uno/card/color"
)

// Console is the terminal of the human seat. Every printed line is followed
// by delay so bot turns can be followed.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	delay time.Duration
}

func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
}

// Stdio reads from stdin and writes through the colour-aware stdout.
func Stdio(delay time.Duration) *Console {
	return NewConsole(os.Stdin, color.Stdout, delay)
}

func (c *Console) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, args...)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
