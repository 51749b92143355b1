// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// splitValues breaks s on whitespace and commas.
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// parseValues converts tokens to integers. A token may itself hold several
// comma separated values, as in "1,2,3".
func parseValues(tokens []string) ([]int, error) {
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		for _, field := range splitValues(tok) {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid integer %q", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// readValues reads integers from r. Text after '#' on a line is ignored.
func readValues(r io.Reader) ([]int, error) {
	var values []int

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		parsed, err := parseValues([]string{line})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		values = append(values, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// readValuesFile reads integers from path, or from stdin when path is "-".
func readValuesFile(path string) ([]int, error) {
	if path == "-" {
		return readValues(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return readValues(file)
}

// collectValues merges positional arguments with the contents of file, if any.
func collectValues(args []string, file string) ([]int, error) {
	values, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return values, nil
	}

	fromFile, err := readValuesFile(file)
	if err != nil {
		return nil, err
	}
	return append(values, fromFile...), nil
}
