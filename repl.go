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
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/willf/bloom"

	"github.com/cybrota/avlsort/avl"
	"github.com/cybrota/avlsort/sorting"
)

var errQuit = errors.New("quit")

const replHelp = `commands:
  insert <v>...        add values to the tree
  delete <v>...        remove one occurrence of each value
  contains <v>         report whether v is stored
  traverse             print values in order
  print                draw the tree
  min | max | len      tree statistics
  check                verify balance, heights and order
  clear                drop every value
  sort <algo> <v>...   sort values with an algorithm
  algorithms           list sorting algorithms
  help                 show this text
  quit | exit          leave the session`

// Session is an interactive session over a single tree.
type Session struct {
	tree     *avl.Tree[int]
	registry *sorting.Registry
	results  *cache.Cache
	inserted *bloom.BloomFilter // every value ever inserted since the last clear
	config   ReplConfig
	out      io.Writer
	logger   *logrus.Logger
}

func NewSession(config ReplConfig, out io.Writer, logger *logrus.Logger) *Session {
	return &Session{
		tree:     avl.New[int](),
		registry: sorting.NewRegistry(),
		results:  NewSortCache(time.Duration(config.CacheMinutes) * time.Minute),
		inserted: bloom.New(config.BloomSize, config.BloomHashes),
		config:   config,
		out:      out,
		logger:   logger,
	}
}

// Run reads commands from in until EOF or quit. Errors from individual
// commands are reported and the session continues.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, s.config.Prompt)
	for scanner.Scan() {
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, GetStyles().Error.Render("error: "+err.Error()))
		}
		fmt.Fprint(s.out, s.config.Prompt)
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// Exec runs a single command line. It returns errQuit for quit and exit.
func (s *Session) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	s.logger.WithFields(logrus.Fields{"command": cmd, "args": rest}).Debug("repl")

	switch cmd {
	case "insert", "i":
		return s.insert(rest)
	case "delete", "d":
		return s.delete(rest)
	case "contains":
		return s.contains(rest)
	case "traverse", "t":
		return s.tree.Traverse(func(v int) {
			fmt.Fprintln(s.out, v)
		})
	case "print", "p":
		return s.tree.Print(s.out)
	case "min", "max":
		return s.minMax(cmd)
	case "len":
		fmt.Fprintf(s.out, "%d values, height %d\n", s.tree.Len(), s.tree.Height())
	case "check":
		if err := s.tree.Check(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, GetStyles().Success.Render("ok"))
	case "clear":
		s.tree = avl.New[int]()
		s.inserted.ClearAll()
	case "sort":
		return s.sort(rest)
	case "algorithms":
		fmt.Fprintln(s.out, strings.Join(s.registry.Names(), "\n"))
	case "help", "?":
		fmt.Fprintln(s.out, replHelp)
	case "quit", "exit", "q":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func (s *Session) insert(args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		s.tree.Insert(v)
		s.inserted.AddString(strconv.Itoa(v))
	}
	return nil
}

func (s *Session) delete(args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		if s.tree.IsEmpty() {
			return fmt.Errorf("delete %d: %w", v, avl.ErrEmptyTree)
		}
		// A bloom miss means v was never inserted, so the tree walk is skipped.
		if !s.inserted.TestString(strconv.Itoa(v)) {
			s.logger.WithField("value", v).Debug("never inserted, skipping tree walk")
			fmt.Fprintf(s.out, "%d not found\n", v)
			continue
		}

		removed, err := s.tree.Delete(v)
		if err != nil {
			return fmt.Errorf("delete %d: %w", v, err)
		}
		if !removed {
			fmt.Fprintf(s.out, "%d not found\n", v)
		}
	}
	return nil
}

func (s *Session) contains(args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	if len(values) != 1 {
		return fmt.Errorf("contains takes exactly one value")
	}
	fmt.Fprintln(s.out, s.tree.Contains(values[0]))
	return nil
}

func (s *Session) minMax(which string) error {
	get := s.tree.Min
	if which == "max" {
		get = s.tree.Max
	}
	v, err := get()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func (s *Session) sort(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: sort <algorithm> <values>...")
	}
	sorter, err := s.registry.Get(args[0])
	if err != nil {
		return err
	}
	values, err := parseValues(args[1:])
	if err != nil {
		return err
	}

	if cached, ok := GetSortResult(s.results, sorter.Name(), values); ok {
		s.logger.WithField("algorithm", sorter.Name()).Debug("sort cache hit")
		fmt.Fprintln(s.out, joinValues(cached))
		return nil
	}

	sorted := sorter.Sort(slices.Clone(values))
	CacheSortResult(s.results, sorter.Name(), values, sorted)
	fmt.Fprintln(s.out, joinValues(sorted))
	return nil
}
