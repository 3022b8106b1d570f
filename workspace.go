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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/cybrota/ranktree/avl"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-shellwords"
	"go.uber.org/zap"
)

const defaultTreeName = "main"

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong arguments")
	errNoSuchTree     = errors.New("no such tree")
	errTreeExists     = errors.New("tree name already in use")
)

// Workspace holds named trees and interprets shell commands against them.
type Workspace struct {
	indexes map[string]*Index
	current string
	config  *Config
	log     *zap.Logger
}

func NewWorkspace(config *Config, log *zap.Logger) *Workspace {
	ws := &Workspace{
		indexes: map[string]*Index{},
		current: defaultTreeName,
		config:  config,
		log:     log,
	}
	ws.indexes[defaultTreeName] = NewIndex(avl.New(), config.Index, log)
	return ws
}

func (ws *Workspace) Current() string {
	return ws.current
}

func (ws *Workspace) index() *Index {
	return ws.indexes[ws.current]
}

func (ws *Workspace) names() []string {
	names := make([]string, 0, len(ws.indexes))
	for name := range ws.indexes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type command struct {
	usage string
	args  int // exact argument count, -1 for any
	run   func(ws *Workspace, args []string) (string, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"insert": {"insert KEY VALUE", 2, (*Workspace).cmdInsert},
		"delete": {"delete KEY", 1, (*Workspace).cmdDelete},
		"search": {"search KEY", 1, (*Workspace).cmdSearch},
		"min":    {"min", 0, (*Workspace).cmdMin},
		"max":    {"max", 0, (*Workspace).cmdMax},
		"size":   {"size", 0, (*Workspace).cmdSize},
		"keys":   {"keys", 0, (*Workspace).cmdKeys},
		"values": {"values", 0, (*Workspace).cmdValues},
		"select": {"select INDEX", 1, (*Workspace).cmdSelect},
		"print":  {"print", 0, (*Workspace).cmdPrint},
		"verify": {"verify", 0, (*Workspace).cmdVerify},
		"split":  {"split KEY LOW HIGH", 3, (*Workspace).cmdSplit},
		"join":   {"join KEY VALUE OTHER", 3, (*Workspace).cmdJoin},
		"use":    {"use NAME", 1, (*Workspace).cmdUse},
		"trees":  {"trees", 0, (*Workspace).cmdTrees},
		"seq":    {"seq FROM TO", 2, (*Workspace).cmdSeq},
		"help":   {"help", 0, (*Workspace).cmdHelp},
	}
}

// Execute runs one command line. Blank lines and # comments yield "".
func (ws *Workspace) Execute(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, ok := commands[strings.ToLower(args[0])]
	if !ok {
		return "", fmt.Errorf("%w: %s (try help)", errUnknownCommand, args[0])
	}
	if cmd.args >= 0 && len(args)-1 != cmd.args {
		return "", fmt.Errorf("%w, usage: %s", errUsage, cmd.usage)
	}
	return cmd.run(ws, args[1:])
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errUsage, s)
	}
	return v, nil
}

func (ws *Workspace) cmdInsert(args []string) (string, error) {
	key, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	ops, err := ws.index().Insert(key, args[1])
	if err != nil {
		return "", fmt.Errorf("insert %d: %w", key, err)
	}
	return fmt.Sprintf("inserted %d (%d rebalancing ops)", key, ops), nil
}

func (ws *Workspace) cmdDelete(args []string) (string, error) {
	key, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	ops, err := ws.index().Delete(key)
	if err != nil {
		return "", fmt.Errorf("delete %d: %w", key, err)
	}
	return fmt.Sprintf("deleted %d (%d rebalancing ops)", key, ops), nil
}

func (ws *Workspace) cmdSearch(args []string) (string, error) {
	key, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	v, ok := ws.index().Search(key)
	if !ok {
		return fmt.Sprintf("%d not found", key), nil
	}
	return v, nil
}

func (ws *Workspace) cmdMin(_ []string) (string, error) {
	if v, ok := ws.index().Tree().Min(); ok {
		return v, nil
	}
	return "(empty)", nil
}

func (ws *Workspace) cmdMax(_ []string) (string, error) {
	if v, ok := ws.index().Tree().Max(); ok {
		return v, nil
	}
	return "(empty)", nil
}

func (ws *Workspace) cmdSize(_ []string) (string, error) {
	return strconv.Itoa(ws.index().Tree().Size()), nil
}

func (ws *Workspace) cmdKeys(_ []string) (string, error) {
	keys := ws.index().Tree().KeysToArray()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(parts, " ") + "]", nil
}

func (ws *Workspace) cmdValues(_ []string) (string, error) {
	values := ws.index().Tree().ValuesToArray()
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, " ") + "]", nil
}

func (ws *Workspace) cmdSelect(args []string) (string, error) {
	i, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	key, value, ok := ws.index().Tree().Select(i)
	if !ok {
		return "", fmt.Errorf("%w: index %d outside [0, %d)", errUsage, i, ws.index().Tree().Size())
	}
	return fmt.Sprintf("%d=%s", key, value), nil
}

func (ws *Workspace) cmdPrint(_ []string) (string, error) {
	return strings.TrimRight(renderTree(ws.current, ws.index().Tree(), ws.config.Render.MaxNodes), "\n"), nil
}

func (ws *Workspace) cmdVerify(_ []string) (string, error) {
	if err := ws.index().Tree().Validate(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s ok (%d entries)", ws.current, ws.index().Tree().Size()), nil
}

func (ws *Workspace) cmdSplit(args []string) (string, error) {
	key, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	lowName, highName := args[1], args[2]
	if lowName == highName {
		return "", fmt.Errorf("%w: %s", errTreeExists, lowName)
	}
	for _, name := range []string{lowName, highName} {
		if _, ok := ws.indexes[name]; ok && name != ws.current {
			return "", fmt.Errorf("%w: %s", errTreeExists, name)
		}
	}

	low, high, err := ws.index().Split(key)
	if err != nil {
		return "", fmt.Errorf("split %d: %w", key, err)
	}
	delete(ws.indexes, ws.current)
	ws.indexes[lowName] = low
	ws.indexes[highName] = high
	ws.current = lowName
	return fmt.Sprintf("split %d: %s has %d entries, %s has %d entries",
		key, lowName, low.Tree().Size(), highName, high.Tree().Size()), nil
}

func (ws *Workspace) cmdJoin(args []string) (string, error) {
	key, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	otherName := args[2]
	other, ok := ws.indexes[otherName]
	if !ok {
		return "", fmt.Errorf("%w: %s", errNoSuchTree, otherName)
	}
	if otherName == ws.current {
		return "", fmt.Errorf("join %d: %w", key, avl.ErrSameTree)
	}

	cost, err := ws.index().Join(key, args[1], other)
	if err != nil {
		return "", fmt.Errorf("join %d: %w", key, err)
	}
	delete(ws.indexes, otherName)
	return fmt.Sprintf("joined %s into %s around %d (cost %d, %d entries)",
		otherName, ws.current, key, cost, ws.index().Tree().Size()), nil
}

func (ws *Workspace) cmdUse(args []string) (string, error) {
	name := args[0]
	if _, ok := ws.indexes[name]; !ok {
		ws.indexes[name] = NewIndex(avl.New(), ws.config.Index, ws.log)
	}
	ws.current = name
	return "using " + name, nil
}

func (ws *Workspace) cmdTrees(_ []string) (string, error) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"", "Tree", "Size", "Rank"})
	for _, name := range ws.names() {
		marker := ""
		if name == ws.current {
			marker = "*"
		}
		tree := ws.indexes[name].Tree()
		tbl.AppendRow(table.Row{marker, name, humanize.Comma(int64(tree.Size())), tree.Root().Rank()})
	}
	return tbl.Render(), nil
}

func (ws *Workspace) cmdSeq(args []string) (string, error) {
	from, err := parseInt(args[0])
	if err != nil {
		return "", err
	}
	to, err := parseInt(args[1])
	if err != nil {
		return "", err
	}

	inserted, total := 0, 0
	for k := from; k < to; k++ {
		ops, err := ws.index().Insert(k, strconv.Itoa(k))
		if errors.Is(err, avl.ErrKeyExists) {
			continue
		}
		if err != nil {
			return "", err
		}
		inserted++
		total += ops
	}
	return fmt.Sprintf("inserted %s keys (%s rebalancing ops)",
		humanize.Comma(int64(inserted)), humanize.Comma(int64(total))), nil
}

func (ws *Workspace) cmdHelp(_ []string) (string, error) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	b.WriteString("commands:")
	for _, name := range names {
		b.WriteString("\n  " + commands[name].usage)
	}
	return b.String(), nil
}
