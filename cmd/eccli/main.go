// Command eccli is a thin front-end over the library: generate key pairs,
// encrypt/decrypt byte payloads via Mapper+ElGamal, and sign/verify
// digests via ECDSA, for any curve in the catalog.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/fastsha256"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/sammyne/bigi-ecc/bigint"
	"github.com/sammyne/bigi-ecc/catalog"
	"github.com/sammyne/bigi-ecc/curve"
	"github.com/sammyne/bigi-ecc/ecdsa"
	"github.com/sammyne/bigi-ecc/elgamal"
	"github.com/sammyne/bigi-ecc/schema"
)

var curveFlag = &cli.StringFlag{
	Name:  "curve",
	Usage: "named curve: secp256k1, fp254bnb, Curve25519, Curve1174",
	Value: "secp256k1",
}

var pubFlag = &cli.StringFlag{
	Name:  "pub",
	Usage: "public key point, hex-encoded as \"<x> <y>\"",
}

var privFlag = &cli.StringFlag{
	Name:  "priv",
	Usage: "private key scalar, hex-encoded",
}

var sigFlag = &cli.StringFlag{
	Name:  "sig",
	Usage: "signature, hex-encoded as \"<r> <s>\"",
}

func resolveSchema(name string) (schema.Schema, error) {
	all := catalog.All()
	s, ok := all[name]
	if !ok {
		return schema.Schema{}, errors.Errorf("unknown curve %q", name)
	}
	return s, nil
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "eccli: building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	app := &cli.App{
		Name:  "eccli",
		Usage: "elliptic-curve arithmetic, ElGamal and ECDSA over affine points",
		Commands: []*cli.Command{
			genkeyCommand(sugar),
			encryptCommand(sugar),
			decryptCommand(sugar),
			signCommand(sugar),
			verifyCommand(sugar),
		},
	}

	if err := app.Run(os.Args); err != nil {
		sugar.Errorw("command failed", "error", err)
		os.Exit(1)
	}
}

func genkeyCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "genkey",
		Usage: "generate a private/public key pair",
		Flags: []cli.Flag{curveFlag},
		Action: func(c *cli.Context) error {
			s, err := resolveSchema(c.String(curveFlag.Name))
			if err != nil {
				return err
			}

			d, q, err := s.GeneratePair(nil)
			if err != nil {
				return errors.Wrap(err, "generating key pair")
			}

			log.Infow("generated key pair", "curve", s.Title)
			fmt.Printf("private: %s\npublic:  %s\n", d.Hex(), q.ToHex())
			return nil
		},
	}
}

func encryptCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "encrypt",
		Usage: "Mapper+ElGamal-encrypt stdin to hex ciphertext",
		Flags: []cli.Flag{curveFlag, pubFlag},
		Action: func(c *cli.Context) error {
			s, err := resolveSchema(c.String(curveFlag.Name))
			if err != nil {
				return err
			}
			q, err := curve.FromHex(c.String(pubFlag.Name))
			if err != nil {
				return errors.Wrap(err, "parsing public key")
			}

			body, err := readAll(os.Stdin)
			if err != nil {
				return err
			}

			ct, err := elgamal.EncryptBytes(nil, s, q, body)
			if err != nil {
				return errors.Wrap(err, "encrypting")
			}

			log.Infow("encrypted payload", "curve", s.Title, "points", len(ct.C2))
			fmt.Printf("C1: %s\n", ct.C1.ToHex())
			for i, p := range ct.C2 {
				fmt.Printf("C2[%d]: %s\n", i, p.ToHex())
			}
			return nil
		},
	}
}

func decryptCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "decrypt",
		Usage: "ElGamal+Mapper-decrypt a ciphertext back to bytes",
		Flags: []cli.Flag{curveFlag, privFlag},
		Action: func(c *cli.Context) error {
			s, err := resolveSchema(c.String(curveFlag.Name))
			if err != nil {
				return err
			}
			d, err := bigint.FromHex(c.String(privFlag.Name))
			if err != nil {
				return errors.Wrap(err, "parsing private key")
			}

			ct, err := readCiphertext(os.Stdin)
			if err != nil {
				return err
			}

			body, err := elgamal.DecryptBytes(s, d, ct)
			if err != nil {
				return errors.Wrap(err, "decrypting")
			}

			log.Infow("decrypted payload", "curve", s.Title, "bytes", len(body))
			os.Stdout.Write(body) //nolint:errcheck
			return nil
		},
	}
}

func signCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "SHA-256 + ECDSA-sign stdin, print (r, s) hex",
		Flags: []cli.Flag{curveFlag, privFlag},
		Action: func(c *cli.Context) error {
			s, err := resolveSchema(c.String(curveFlag.Name))
			if err != nil {
				return err
			}
			d, err := bigint.FromHex(c.String(privFlag.Name))
			if err != nil {
				return errors.Wrap(err, "parsing private key")
			}

			body, err := readAll(os.Stdin)
			if err != nil {
				return err
			}

			sig, err := ecdsa.Sign(nil, s, d, halfDigest(body, s))
			if err != nil {
				return errors.Wrap(err, "signing")
			}

			log.Infow("signed message", "curve", s.Title, "bytes", len(body))
			fmt.Printf("r: %s\ns: %s\n", sig.R.Hex(), sig.S.Hex())
			return nil
		},
	}
}

func verifyCommand(log *zap.SugaredLogger) *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "SHA-256 + ECDSA-verify stdin",
		Flags: []cli.Flag{curveFlag, pubFlag, sigFlag},
		Action: func(c *cli.Context) error {
			s, err := resolveSchema(c.String(curveFlag.Name))
			if err != nil {
				return err
			}
			q, err := curve.FromHex(c.String(pubFlag.Name))
			if err != nil {
				return errors.Wrap(err, "parsing public key")
			}
			sig, err := parseSignature(c.String(sigFlag.Name))
			if err != nil {
				return err
			}

			body, err := readAll(os.Stdin)
			if err != nil {
				return err
			}

			ok, err := ecdsa.Verify(s, q, halfDigest(body, s), sig)
			if err != nil {
				return errors.Wrap(err, "verifying")
			}

			log.Infow("verified signature", "curve", s.Title, "valid", ok)
			if !ok {
				return cli.Exit("signature invalid", 1)
			}
			fmt.Println("signature valid")
			return nil
		},
	}
}

// halfDigest hashes body with SHA-256 and truncates to half a coordinate,
// satisfying ecdsa.Sign/Verify's hash-length precondition.
func halfDigest(body []byte, s schema.Schema) []byte {
	digest := fastsha256.Sum256(body)
	width := (s.Bits + 7) / 8
	return digest[:width/2]
}

func readAll(r io.Reader) ([]byte, error) {
	out, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return out, nil
}

func parseSignature(s string) (ecdsa.Signature, error) {
	var rHex, sHex string
	if _, err := fmt.Sscanf(s, "%s %s", &rHex, &sHex); err != nil {
		return ecdsa.Signature{}, errors.Wrap(err, "parsing signature")
	}
	r, err := bigint.FromHex(rHex)
	if err != nil {
		return ecdsa.Signature{}, errors.Wrap(err, "parsing r")
	}
	sVal, err := bigint.FromHex(sHex)
	if err != nil {
		return ecdsa.Signature{}, errors.Wrap(err, "parsing s")
	}
	return ecdsa.Signature{R: r, S: sVal}, nil
}

func readCiphertext(r io.Reader) (elgamal.Ciphertext, error) {
	scanner := bufio.NewScanner(r)
	var ct elgamal.Ciphertext
	for scanner.Scan() {
		line := scanner.Text()
		var label, xHex, yHex string
		if _, err := fmt.Sscanf(line, "%s %s %s", &label, &xHex, &yHex); err != nil {
			continue
		}
		p, err := curve.FromHex(xHex + " " + yHex)
		if err != nil {
			return elgamal.Ciphertext{}, errors.Wrapf(err, "parsing ciphertext line %q", line)
		}
		if label == "C1:" {
			ct.C1 = p
		} else {
			ct.C2 = append(ct.C2, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return elgamal.Ciphertext{}, errors.Wrap(err, "reading ciphertext")
	}
	return ct, nil
}
