package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseInt64s parses every argument as a base-10 int64.
func parseInt64s(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out[i] = v
	}

	return out, nil
}

// parseInt parses one base-10 int.
func parseInt(arg string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", arg, err)
	}

	return v, nil
}

// join renders values separated by single spaces.
func join[T any](values []T) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}

	return sb.String()
}

// readRecords reads whitespace-separated integers from r, width per record.
// A trailing partial record is an error.
func readRecords(r io.Reader, width int) ([][]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		records [][]int64
		cur     []int64
	)
	for sc.Scan() {
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid integer %q: %w", len(records)+1, sc.Text(), err)
		}
		cur = append(cur, v)
		if len(cur) == width {
			records = append(records, cur)
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(cur) != 0 {
		return nil, fmt.Errorf("record %d: expected %d integers, got %d", len(records)+1, width, len(cur))
	}

	return records, nil
}
