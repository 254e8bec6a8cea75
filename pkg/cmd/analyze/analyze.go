package analyze

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/f1analysis-go/pkg/config"
	"github.com/mpapenbr/f1analysis-go/pkg/session"
)

var errNoSessionFile = errors.New("no session export given (use --session)")

func loadSession() (*session.Session, error) {
	if config.SessionFile == "" {
		return nil, errNoSessionFile
	}
	return session.LoadFile(config.SessionFile)
}

// resolveDrivers returns the drivers given on the command line or, when none
// are given, all drivers of the session.
func resolveDrivers(sess *session.Session, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return sess.Drivers()
}

// emit prints data as JSON when --json is set, otherwise it renders the
// given table via tabwriter.
func emit(data interface{}, table func(w *tabwriter.Writer)) {
	if config.OutputJSON {
		fmt.Println(oj.JSON(data, 2))
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	table(w)
	w.Flush()
}

// parseCategories parses corner categories in the form
// "high=1,2,3;low=4,5".
func parseCategories(arg string) (map[string][]int, error) {
	ret := make(map[string][]int)
	for _, part := range strings.Split(arg, ";") {
		if part == "" {
			continue
		}
		name, nums, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid category %q", part)
		}
		corners := make([]int, 0)
		for _, s := range strings.Split(nums, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("invalid corner number %q in category %s", s, name)
			}
			corners = append(corners, n)
		}
		ret[strings.TrimSpace(name)] = corners
	}
	return ret, nil
}
