// Package casefile reads round-trip test cases for the eliasfanoctl
// self-test and benchmark drivers from a plain text file: one case per
// line, "n,max", where n is the element count and max is the largest
// value in the generated sequence.
package casefile

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Case is one line of a case file: generate n strictly increasing
// values up to max and round-trip them.
type Case struct {
	N   uint32
	Max uint32
}

// Load reads and parses every case in filename. Blank lines and lines
// starting with '#' are skipped.
func Load(filename string) ([]Case, error) {
	file, err := os.Open(filename)
	if nil != err {
		return nil, errors.Wrapf(err, "casefile: open %s", filename)
	}
	defer file.Close()

	var cases []Case
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseLine(line)
		if nil != err {
			return nil, errors.Wrapf(err, "casefile: %s:%d", filename, lineNo)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); nil != err {
		return nil, errors.Wrapf(err, "casefile: read %s", filename)
	}
	return cases, nil
}

func parseLine(line string) (Case, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Case{}, errors.Errorf("want \"n,max\", got %q", line)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(fields[0]), 10, 32)
	if nil != err {
		return Case{}, errors.Wrapf(err, "invalid n %q", fields[0])
	}
	max, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 32)
	if nil != err {
		return Case{}, errors.Wrapf(err, "invalid max %q", fields[1])
	}
	return Case{N: uint32(n), Max: uint32(max)}, nil
}
