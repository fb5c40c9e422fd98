package edgelist

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edgekit/edgekit/pkg/errors"
)

// Parse tokenizes r into rows of non-negative integers. Each input line
// becomes one row; lines are split on whitespace and every token must be a
// valid non-negative integer. Blank lines are skipped.
//
// Parse returns an error with code PARSE_ERROR identifying the line and
// token on the first invalid token.
func Parse(r io.Reader) ([][]int64, error) {
	var rows [][]int64

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int64, len(fields))
		for i, tok := range fields {
			n, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, errors.New(errors.ErrCodeParse,
					"line %d: %q is not a non-negative integer", line, tok)
			}
			row[i] = int64(n)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
	}
	return rows, nil
}

// ParseFile reads and tokenizes the file at path.
// A missing or unreadable file yields an error with code FILE_NOT_FOUND.
func ParseFile(path string) ([][]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return Parse(f)
}
