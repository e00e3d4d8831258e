// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"code.hybscloud.com/bufx"
)

var (
	verbose   bool
	output    string
	appendOut bool
	readSize  int
	threshold int
	chunkSize int
)

var rootCmd = &cobra.Command{
	Use:   "bufcat [file ...]",
	Short: "Concatenate files through buffered I/O",
	Long: `bufcat copies each input to the output through a BufReader and a
BufWriter. Reads smaller than --read-size are batched; writes are coalesced
up to --threshold bytes. When --output names a file it is synced before exit.

Examples:
  bufcat a.txt b.txt
  bufcat -o all.txt --threshold 65536 a.txt b.txt
  cat big.bin | bufcat --chunk 16384 -o copy.bin`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(newLogger(), args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	f.StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	f.BoolVarP(&appendOut, "append", "a", false, "append to --output instead of truncating it")
	f.IntVar(&readSize, "read-size", bufx.DefaultBufferSize, "read buffer capacity")
	f.IntVar(&threshold, "threshold", bufx.DefaultBufferSize, "write spill threshold")
	f.IntVar(&chunkSize, "chunk", 512, "copy staging size")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).With().Timestamp().Logger()
}

func openOutput() (*bufx.File, error) {
	if output == "" {
		return bufx.Stdout(), nil
	}
	return bufx.OpenOptions{
		Write:    true,
		Create:   true,
		Truncate: !appendOut,
		Append:   appendOut,
	}.Open(output)
}

func openInput(name string) (*bufx.File, error) {
	if name == "-" {
		return bufx.Stdin(), nil
	}
	return bufx.Open(name)
}

func run(log zerolog.Logger, args []string) (err error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out, err := openOutput()
	if err != nil {
		return err
	}
	w := bufx.NewWriter(out, bufx.WithThreshold(threshold), bufx.WithLogger(log))
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	stage := make([]byte, max(chunkSize, 1))
	var total int64
	for _, name := range args {
		n, err := copyInput(log, w, name, stage)
		total += n
		if err != nil {
			return err
		}
	}
	log.Debug().Int64("bytes", total).Int("files", len(args)).Msg("copied")
	return nil
}

func copyInput(log zerolog.Logger, w *bufx.BufWriter, name string, stage []byte) (int64, error) {
	in, err := openInput(name)
	if err != nil {
		log.Error().Err(err).Str("input", name).Msg("open failed")
		return 0, err
	}
	defer in.Close()

	r := bufx.NewReader(in, bufx.WithReaderSize(readSize))
	n, err := bufx.Copy(w, r,
		bufx.WithBuffer(stage),
		bufx.WithPolicy(bufx.InterruptPolicy{}),
		bufx.WithCopyLogger(log),
	)
	if err != nil {
		log.Error().Err(err).Str("input", name).Str("kind", bufx.KindOf(err).String()).Msg("copy failed")
		return n, err
	}
	log.Debug().Str("input", name).Int64("bytes", n).Msg("copied input")
	return n, nil
}
