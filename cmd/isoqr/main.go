/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command isoqr reads a message on standard input and writes a QR Code or
// Micro QR Code symbol, rendered as SVG, to standard output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	qrcodegen "github.com/grkuntzmd/isoqr"
)

var (
	errorLevelFlag string
	symbolVersion  int
	microFlag      bool
	eciNumber      int
	openFlag       bool
	log            zerolog.Logger
)

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "isoqr",
		Short: "Encode standard input as a QR Code or Micro QR Code symbol",
		RunE:  run,
	}
	root.Flags().StringVar(&errorLevelFlag, "error-level", "M", "error correction level: L, M, Q, or H (Q is Micro QR M4 only)")
	root.Flags().IntVar(&symbolVersion, "symbol-version", 0, "QR version 1-40, or Micro QR version 1-4 with --micro (0 = automatic)")
	root.Flags().BoolVar(&microFlag, "micro", false, "produce a Micro QR code instead of a full QR code")
	root.Flags().IntVar(&eciNumber, "eci", -1, "ECI assignment number, 0-999999 (omit for none)")
	root.Flags().BoolVar(&openFlag, "open", false, "open the rendered SVG in the default browser")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("encoding failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	message, err := readMessage(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading message: %w", err)
	}

	level, err := parseLevel(errorLevelFlag)
	if err != nil {
		return err
	}

	svg, designator, err := encode(message, level)
	if err != nil {
		return err
	}

	log.Info().Str("designator", designator).Msg("encoded symbol")
	fmt.Print(svg)

	if openFlag {
		if err := openInBrowser(svg); err != nil {
			log.Error().Err(err).Msg("could not open browser")
		}
	}

	return nil
}

func readMessage(r io.Reader) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
	}
	return sb.String(), scanner.Err()
}

func parseLevel(s string) (qrcodegen.ECC, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrcodegen.Low, nil
	case "M":
		return qrcodegen.Medium, nil
	case "Q":
		return qrcodegen.Quartile, nil
	case "H":
		return qrcodegen.High, nil
	default:
		return 0, fmt.Errorf("unrecognized error level %q", s)
	}
}

func encode(message string, level qrcodegen.ECC) (svg, designator string, err error) {
	if microFlag {
		var code *qrcodegen.MicroQRCode
		hasLevel := level != qrcodegen.Low || symbolVersion != 1
		if eciNumber >= 0 {
			code, err = qrcodegen.EncodeMicroTextWithECI(message, eciNumber, level, hasLevel)
		} else if symbolVersion > 0 {
			code, err = qrcodegen.EncodeMicroSegments(qrcodegen.MakeSegments(message), qrcodegen.MicroVersion(symbolVersion), level, hasLevel, -1)
		} else {
			code, err = qrcodegen.EncodeMicroText(message, level, hasLevel)
		}
		if err != nil {
			return "", "", err
		}
		svg, err = code.ToSVGString(4, true)
		return svg, code.Designator(), err
	}

	var code *qrcodegen.QRCode
	switch {
	case symbolVersion > 0 && eciNumber >= 0:
		err = fmt.Errorf("--symbol-version and --eci cannot currently be combined")
	case symbolVersion > 0:
		code, err = qrcodegen.EncodeSegments(qrcodegen.MakeSegments(message), level,
			qrcodegen.WithMinVersion(qrcodegen.Version(symbolVersion)), qrcodegen.WithMaxVersion(qrcodegen.Version(symbolVersion)))
	case eciNumber >= 0:
		code, err = qrcodegen.EncodeTextWithECI(message, eciNumber, level)
	default:
		code, err = qrcodegen.EncodeText(message, level)
	}
	if err != nil {
		return "", "", err
	}

	svg, err = code.ToSVGString(4, true)
	return svg, code.Designator(), err
}

func openInBrowser(svg string) error {
	f, err := os.CreateTemp("", "isoqr-*.svg")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(svg); err != nil {
		return err
	}

	return browser.OpenFile(f.Name())
}
