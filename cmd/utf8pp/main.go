// utf8pp prints text one character per line, walking it with the utf8pp
// codec. Text comes from the arguments or, without arguments, from stdin.
//
// With --encode the arguments are codepoints instead (U+1F600, 0x41 or
// decimal) and their UTF-8 bytes are written to stdout.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	utf8pp "github.com/42atomys/go-utf8pp"
	"github.com/42atomys/go-utf8pp/console"
)

type options struct {
	reverse    bool
	codepoints bool
	encode     bool
	logLevel   string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("utf8pp", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&opts.reverse, "reverse", "r", false, "walk the text from its end")
	flagSet.BoolVarP(&opts.codepoints, "codepoints", "c", false, "print codepoint and byte length with each character")
	flagSet.BoolVarP(&opts.encode, "encode", "e", false, "treat arguments as codepoints and write their UTF-8 bytes")
	flagSet.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, "Usage: utf8pp [flags] [text...]\n\nFlags:\n")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := newLogger(stderr, opts.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if err := console.SetUTF8(stdout); err != nil {
		logger.Warn("could not switch stdout to UTF-8", zap.Error(err))
	}

	out := bufio.NewWriter(stdout)
	if err := process(out, stdin, flagSet.Args(), opts, logger); err != nil {
		// Whatever was printed before the failure still goes out.
		_ = out.Flush()
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

func process(out io.Writer, stdin io.Reader, args []string, opts options, logger *zap.Logger) error {
	if opts.encode {
		return encodeCodepoints(out, args, logger)
	}

	text, err := readText(args, stdin)
	if err != nil {
		return err
	}
	logger.Debug("input read", zap.Int("bytes", len(text)), zap.Bool("reverse", opts.reverse))

	if opts.reverse {
		return printBackward(out, text, opts.codepoints, logger)
	}
	return printForward(out, text, opts.codepoints, logger)
}

// readText joins the arguments with spaces, or reads all of stdin minus a
// trailing line break.
func readText(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return bytes.TrimRight(data, "\r\n"), nil
}

func printForward(w io.Writer, text []byte, codepoints bool, logger *zap.Logger) error {
	count := 0
	for cursor := 0; ; {
		r, n, err := utf8pp.DecodeForward(text[cursor:])
		if err != nil {
			logger.Debug("malformed input", zap.Int("offset", cursor), zap.Error(err))
			return fmt.Errorf("offset %d: %w", cursor, err)
		}
		if n == 0 {
			break
		}
		if err := writeChar(w, text[cursor:cursor+n], r, codepoints); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		cursor += n
		count++
	}
	logger.Debug("done", zap.Int("characters", count))
	return nil
}

func printBackward(w io.Writer, text []byte, codepoints bool, logger *zap.Logger) error {
	count := 0
	for cursor := len(text); ; {
		r, n, err := utf8pp.DecodeBackward(text, cursor)
		if err != nil {
			logger.Debug("malformed input", zap.Int("offset", cursor-1), zap.Error(err))
			return fmt.Errorf("offset %d: %w", cursor-1, err)
		}
		if n == 0 {
			break
		}
		if err := writeChar(w, text[cursor-n:cursor], r, codepoints); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		cursor -= n
		count++
	}
	logger.Debug("done", zap.Int("characters", count))
	return nil
}

func writeChar(w io.Writer, raw []byte, r rune, codepoints bool) error {
	var err error
	if codepoints {
		_, err = fmt.Fprintf(w, "U+%04X\t%d\t%s\n", r, len(raw), raw)
	} else {
		_, err = fmt.Fprintf(w, "%s\n", raw)
	}
	return err
}

func encodeCodepoints(w io.Writer, args []string, logger *zap.Logger) error {
	var buf [utf8pp.MaxLen]byte
	for _, arg := range args {
		r, err := parseCodepoint(arg)
		if err != nil {
			return err
		}
		n, err := utf8pp.Encode(buf[:], r)
		if err != nil {
			logger.Debug("cannot encode", zap.String("codepoint", arg), zap.Error(err))
			return fmt.Errorf("%s: %w", arg, err)
		}
		logger.Debug("encoded", zap.String("codepoint", arg), zap.Binary("bytes", buf[:n]))
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}

// parseCodepoint accepts U+XXXX, 0xXXXX or a decimal number.
func parseCodepoint(s string) (rune, error) {
	digits, base := s, 10
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"),
		strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits, base = s[2:], 16
	}

	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", s, err)
	}
	return rune(v), nil
}
