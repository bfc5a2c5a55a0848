package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"

	"lazily/internal/logging"
	"lazily/lists"
)

// parseList turns a LIST argument into a list. "@path" reads one element per
// line; anything else is split on commas. An empty literal is an empty list.
func parseList(arg string) (*lists.ArrayList[string], error) {
	if path, ok := strings.CutPrefix(arg, "@"); ok {
		return readLines(path)
	}
	if arg == "" {
		return lists.NewArrayList[string](0), nil
	}
	return lists.ArrayListOf(strings.Split(arg, ",")...), nil
}

func readLines(path string) (*lists.ArrayList[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	list := lists.NewArrayList[string](0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		list.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return list, nil
}

func parseLists(args []string) ([]*lists.ArrayList[string], error) {
	out := make([]*lists.ArrayList[string], 0, len(args))
	for _, arg := range args {
		l, err := parseList(arg)
		if err != nil {
			return nil, err
		}
		logging.Trace().Str("list", arg).Int("size", l.Size()).Msg("parsed list")
		out = append(out, l)
	}
	return out, nil
}
