package bot

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

const (
	colorReset     = "\x1b[0m"
	colorGreenBold = "\x1b[1;32m"
	colorRedBold   = "\x1b[1;31m"
	colorBlueBold  = "\x1b[1;34m"
)

const bannerArt = `
████████╗███████╗██╗   ██╗██████╗  █████╗ ███████╗ █████╗     ██████╗  ██████╗ ████████╗
╚══██╔══╝██╔════╝██║   ██║██╔══██╗██╔══██╗██╔════╝██╔══██╗    ██╔══██╗██╔═══██╗╚══██╔══╝
   ██║   ███████╗██║   ██║██████╔╝███████║███████╗███████║    ██████╔╝██║   ██║   ██║
   ██║   ╚════██║██║   ██║██╔══██╗██╔══██║╚════██║██╔══██║    ██╔══██╗██║   ██║   ██║
   ██║   ███████║╚██████╔╝██████╔╝██║  ██║███████║██║  ██║    ██████╔╝╚██████╔╝   ██║
   ╚═╝   ╚══════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝    ╚═════╝  ╚═════╝    ╚═╝
`

// PrintBanner writes the startup banner. Colours are dropped when NO_COLOR is set.
func PrintBanner(w io.Writer) {
	noColor := os.Getenv("NO_COLOR") != ""
	paint := func(code, text string) string {
		if noColor {
			return text
		}
		return code + text + colorReset
	}

	fmt.Fprint(w, bannerArt+"\n")
	fmt.Fprintln(w, paint(colorGreenBold, "TSUBASA BOT"))
	fmt.Fprintln(w, paint(colorRedBold, "Contact: https://t.me/thog099"))
	fmt.Fprintln(w, paint(colorBlueBold, "Replit: Thog"))
	fmt.Fprintln(w)
}

// ClearScreen clears the terminal. Failures are ignored.
func ClearScreen() {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}
