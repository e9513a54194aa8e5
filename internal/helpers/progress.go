package helpers

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

type ProgressBar struct {
	Set   func(int)
	Add   func(int)
	Close func()
}

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if !IsNil(err) {
		return 80
	}
	return MaxInt(80, MinInt(120, width))
}

func CreateProgressBar(total int, label string) ProgressBar {
	p := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(termWidth()/2),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)
	return ProgressBar{
		func(i int) {
			_ = p.Set(i)
		}, func(i int) {
			_ = p.Add(i)
		}, func() {
			_ = p.Close()
		},
	}
}

var NoProgressBar = ProgressBar{
	func(int) {}, func(int) {}, func() {},
}
