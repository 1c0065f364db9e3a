package main

import (
	"context"
	"fmt"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mocukie/imgcmp/internal/coder"
	"github.com/mocukie/imgcmp/internal/component"
	"github.com/mocukie/webp-go/webp"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"gopkg.in/vrecan/death.v3"
	"image/jpeg"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"time"
)

const version = "0.1.0"

var (
	pattern   string
	colorMode string
	openView  bool

	cmdFlags    *flag.FlagSet
	configFlags *flag.FlagSet
)

func initConfig() *component.Config {
	var conf = new(component.Config)
	configFlags = flag.NewFlagSet("configFlags", flag.ContinueOnError)
	configFlags.StringVarP(&pattern, "pattern", "p", "*.png", "file name glob pattern, alternatives separated by |")
	configFlags.IntVar(&conf.MaxGo, "max_go", runtime.NumCPU(), "max thread number")
	configFlags.BoolVar(&conf.FailFast, "fail_fast", false, "stop at the first error")
	configFlags.IntVar(&conf.Precision, "precision", 4, "decimal places of difference scores")
	configFlags.BoolVar(&openView, "open", false, "open both images in the system viewer when they differ")
	configFlags.StringVar(&conf.LogPath, "log", "", "log directory, no log file if omitted")
	configFlags.StringVar(&colorMode, "color", "auto", "colorize output, one of: auto, always, never")
	configFlags.SortFlags = false
	return conf
}

func setupConfig(conf *component.Config) error {
	var err error

	conf.Match, err = component.NewGlobMatcher(pattern)
	if err != nil {
		return errors.WithMessage(err, "invalid pattern: "+pattern)
	}

	if conf.MaxGo <= 0 {
		conf.MaxGo = runtime.NumCPU()
	}
	if conf.Precision < 0 {
		return errors.Errorf("invalid precision: %d", conf.Precision)
	}

	if cmdFlags.NArg() != 2 {
		return errors.New("reference and candidate directory not specify")
	}
	conf.Ref = filepath.Clean(cmdFlags.Arg(0))
	conf.Cand = filepath.Clean(cmdFlags.Arg(1))

	if openView {
		conf.Viewer = openViewer
	}
	conf.Decoder = &coder.Raster{}
	return nil
}

func stdout() (io.Writer, error) {
	switch colorMode {
	case "auto":
		fd := os.Stdout.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return colorable.NewColorableStdout(), nil
		}
		return colorable.NewNonColorable(os.Stdout), nil
	case "always":
		return colorable.NewColorableStdout(), nil
	case "never":
		return colorable.NewNonColorable(os.Stdout), nil
	}
	return nil, errors.New("invalid color mode: " + colorMode)
}

func openLog(conf *component.Config) (*os.File, error) {
	if conf.LogPath == "" {
		return nil, nil
	}
	conf.LogPath = filepath.Clean(conf.LogPath)
	if err := os.MkdirAll(conf.LogPath, os.ModePerm); err != nil {
		return nil, errors.Wrapf(err, "can not make log directory <%s>", conf.LogPath)
	}
	name := filepath.Join(conf.LogPath, time.Now().Format("imgcmp-2006-01-02T15.04.05Z07.00.log"))
	f, err := os.Create(name)
	return f, errors.Wrap(err, "can not create log file")
}

func printUsage() {
	fmt.Printf("imgcmp v%s (libwebp v%v)\n", version, webp.EncoderVersion())
	fmt.Println("Usage:")
	fmt.Printf("\t%v [options] /path/to/reference/dir /path/to/candidate/dir\n", filepath.Base(os.Args[0]))
	fmt.Println()

	fmt.Println("Options:")
	fmt.Print(configFlags.FlagUsages())
}

func main() {
	os.Exit(run())
}

func run() int {
	conf := initConfig()

	cmdFlags = flag.NewFlagSet("cmdFlags", flag.ContinueOnError)
	cmdFlags.AddFlagSet(configFlags)
	showVersion := cmdFlags.BoolP("version", "v", false, "print version")
	cmdFlags.Usage = printUsage
	cmdFlags.SortFlags = false
	err := cmdFlags.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		fmt.Println(err)
		return 1
	}
	if *showVersion {
		fmt.Printf("imgcmp v%s (libwebp v%v)\n", version, webp.EncoderVersion())
		return 0
	}

	if err = setupConfig(conf); err != nil {
		log.Println(err)
		return 1
	}
	out, err := stdout()
	if err != nil {
		log.Println(err)
		return 1
	}

	logOut, err := openLog(conf)
	if err != nil {
		log.Printf("%+v\n", err)
		return 1
	}
	var logWriter io.Writer
	if logOut != nil {
		defer logOut.Close()
		logWriter = logOut
	}

	ctx, abort := context.WithCancel(context.Background())
	defer abort()
	hook := death.NewDeath(syscall.SIGINT, syscall.SIGTERM)
	go hook.WaitForDeathWithFunc(abort)

	summary, err := component.NewDiffer(conf, out, logWriter).Run(ctx)
	if err != nil {
		log.Printf("%v\n", err)
		if logWriter != nil {
			fmt.Fprintf(logWriter, "[ERROR] %+v\n", err)
		}
		return 1
	}
	if summary.Failed() {
		return 1
	}
	return 0
}

//register format
var _ = jpeg.Decode
var _ = tiff.Decode
var _ = bmp.Decode
