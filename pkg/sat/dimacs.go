package sat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sat-lab/satlab/pkg/boolvec"
)

// ErrFormat reports malformed DIMACS CNF input. Errors returned by
// Parse and Load wrap it, so callers can match with errors.Is.
var ErrFormat = errors.New("invalid DIMACS CNF")

// Load reads a DIMACS CNF file into an instance. The resulting
// assignment has one false bit per declared variable; the format has no
// slot for assignments. I/O errors propagate unchanged, format errors
// wrap ErrFormat, and no partial instance is ever returned.
func Load(path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads DIMACS CNF text into an instance. Only the leading run of
// comment lines is skipped; the first content line must be a
// "p cnf <variables> <clauses>" header, and exactly <clauses> lines are
// consumed as clause bodies, each a whitespace-separated run of nonzero
// signed integers up to and excluding the first 0 terminator.
func Parse(reader io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	header, lineNo, ok := nextContentLine(scanner)
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: missing problem header", ErrFormat)
	}

	variables, clauseCount, err := parseHeader(header, lineNo)
	if err != nil {
		return nil, err
	}

	clauses := make([]Clause, 0, clauseCount)
	for range clauseCount {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %v clause lines, found %v", ErrFormat, clauseCount, len(clauses))
		}
		lineNo++

		clause, err := parseClauseLine(scanner.Text(), lineNo)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return NewInstance(boolvec.New(variables, false), clauses), nil
}

// nextContentLine skips the leading run of comment lines and returns
// the first remaining line together with its 1-based number. Only
// comment lines are skipped: anything else, including a blank line,
// must be the header.
func nextContentLine(scanner *bufio.Scanner) (string, int, bool) {
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}
		return line, lineNo, true
	}
	return "", lineNo, false
}

func parseHeader(line string, lineNo int) (variables, clauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "p" {
		return 0, 0, fmt.Errorf("%w: line %d: expected 'p cnf <variables> <clauses>', got %q", ErrFormat, lineNo, line)
	}
	if fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("%w: line %d: unsupported problem type %q", ErrFormat, lineNo, fields[1])
	}

	variables, err = strconv.Atoi(fields[2])
	if err != nil || variables < 0 {
		return 0, 0, fmt.Errorf("%w: line %d: invalid variable count %q", ErrFormat, lineNo, fields[2])
	}
	clauses, err = strconv.Atoi(fields[3])
	if err != nil || clauses < 0 {
		return 0, 0, fmt.Errorf("%w: line %d: invalid clause count %q", ErrFormat, lineNo, fields[3])
	}

	return variables, clauses, nil
}

func parseClauseLine(line string, lineNo int) (Clause, error) {
	clause := Clause{}
	for _, token := range strings.Fields(line) {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid literal %q", ErrFormat, lineNo, token)
		}
		if value == 0 { // Clause terminator; anything after it is ignored
			break
		}
		clause = append(clause, LiteralFromCNF(value))
	}
	return clause, nil
}

// Write renders the instance in DIMACS CNF format: the problem header
// followed by one line per clause, literals space-separated with a
// trailing 0 terminator. The assignment is not recorded.
func (instance *Instance) Write(writer io.Writer) error {
	buffered := bufio.NewWriter(writer)
	fmt.Fprintf(buffered, "p cnf %d %d\n", instance.Vars.Len(), len(instance.clauses))
	for _, clause := range instance.clauses {
		for _, literal := range clause {
			fmt.Fprintf(buffered, "%d ", literal.CNF())
		}
		fmt.Fprintln(buffered, "0")
	}
	return buffered.Flush()
}

// Save writes the instance to a file in DIMACS CNF format. Loading the
// result yields an equivalent clause sequence with an all-false
// assignment; see Write.
func (instance *Instance) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return instance.Write(file)
}
