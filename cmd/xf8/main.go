// Command xf8 is a probabilistic spell checker built on an xf8 filter.
//
// With no arguments it reads a word list on stdin and writes a filter to
// stdout:
//
//	xf8 < words.txt > words.xf8
//
// With a filter file argument it reads words on stdin and prints Y or N
// followed by each word:
//
//	xf8 words.xf8 < essay.txt
//
// -bits, -hash and -key must match between building and checking.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/brianolson/xf8"
	"github.com/brianolson/xf8/keyhash"
)

type options struct {
	bits   int
	hash   string
	key    uint64
	dedup  bool
	hasher keyhash.Hasher
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("xf8", flag.ContinueOnError)
	fs.IntVar(&opts.bits, "bits", 8, "slot width in bits: 8, 16 or 32")
	fs.StringVar(&opts.hash, "hash", "multiply", "key hash: "+strings.Join(keyhash.Names(), ", "))
	fs.Uint64Var(&opts.key, "key", keyhash.DefaultKey, "key for the key hash")
	fs.BoolVar(&opts.dedup, "dedup", true, "drop repeated words before building")
	if err := fs.Parse(args); err != nil {
		return err
	}
	hasher, err := keyhash.ByName(opts.hash, opts.key)
	if err != nil {
		return err
	}
	opts.hasher = hasher

	switch fs.NArg() {
	case 0:
		switch opts.bits {
		case 8:
			return build[uint8](opts, stdin, stdout)
		case 16:
			return build[uint16](opts, stdin, stdout)
		case 32:
			return build[uint32](opts, stdin, stdout)
		}
	case 1:
		switch opts.bits {
		case 8:
			return check[uint8](opts, fs.Arg(0), stdin, stdout)
		case 16:
			return check[uint16](opts, fs.Arg(0), stdin, stdout)
		case 32:
			return check[uint32](opts, fs.Arg(0), stdin, stdout)
		}
	default:
		return errors.New("usage: xf8 [flags] [filter]")
	}
	return fmt.Errorf("unsupported -bits %d", opts.bits)
}

func build[T xf8.Slot](opts options, stdin io.Reader, stdout io.Writer) error {
	var keys []uint64
	err := scanLines(stdin, func(line []byte) error {
		keys = append(keys, opts.hasher.Sum64(line))
		return nil
	})
	if err != nil {
		return err
	}
	if opts.dedup {
		keys = keyhash.Unique(keys)
	}

	filter, err := xf8.Create[T](len(keys))
	if err != nil {
		return fmt.Errorf("%w (create)", err)
	}
	bld := xf8.Builder{CheckDuplicates: !opts.dedup}
	if err := filter.PopulateWith(&bld, keys); err != nil {
		return fmt.Errorf("%w (populate)", err)
	}

	out := bufio.NewWriter(stdout)
	if _, err := filter.WriteTo(out); err != nil {
		return fmt.Errorf("%w, <stdout>", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("%w, <stdout>", err)
	}
	return nil
}

func check[T xf8.Slot](opts options, path string, stdin io.Reader, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var filter xf8.Filter[T]
	if _, err := filter.ReadFrom(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	out := bufio.NewWriter(stdout)
	err = scanLines(stdin, func(line []byte) error {
		mark := byte('N')
		if filter.Contains(opts.hasher.Sum64(line)) {
			mark = 'Y'
		}
		out.WriteByte(mark)
		out.WriteByte(' ')
		out.Write(line)
		return out.WriteByte('\n')
	})
	if err != nil {
		return err
	}
	return out.Flush()
}

// scanLines calls fn with each line of r, without its CR/LF ending.
func scanLines(r io.Reader, fn func(line []byte) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if i := bytes.IndexAny(line, "\r\n"); i >= 0 {
			line = line[:i]
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
