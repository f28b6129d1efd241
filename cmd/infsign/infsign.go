// Copyright (c) 2025-2026 The infnet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// infsign is a command line tool for signing infnet transactions and
// inference requests with a locally held key.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/infnet/infwallet/address"
	"github.com/infnet/infwallet/chaincfg"
	"github.com/infnet/infwallet/crypto/secp256k1"
	"github.com/infnet/infwallet/hdkeychain"
	"github.com/infnet/infwallet/internal/version"
	"github.com/infnet/infwallet/reqsign"
	"github.com/infnet/infwallet/txsign"
	"github.com/infnet/infwallet/walletseed"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	fmt.Fprintln(os.Stderr, `
Commands:
  request   sign an inference request payload (requires --transfer)
  amino     sign a JSON sign document (requires --signer)
  direct    sign a protobuf sign document (requires --signer)
  addr      print the account address for the key
  genseed   generate a new random wallet seed`)
	os.Exit(2)
}

type config struct {
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	SimNet      bool   `long:"simnet" description:"Use the simulation network"`
	Mnemonic    bool   `short:"m" long:"mnemonic" description:"Prompt for a mnemonic sentence instead of a hex private key"`
	Account     uint32 `long:"account" description:"Account used for mnemonic key derivation"`
	Index       uint32 `long:"index" description:"Address index used for mnemonic key derivation"`
	Input       string `short:"i" long:"input" description:"Input file (payload or sign document); use - for stdin" default:"-"`
	Transfer    string `long:"transfer" description:"Transfer address an inference request pays to"`
	Signer      string `long:"signer" description:"Expected signer account address for transaction signing"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// setupLogging wires a logging backend into the signing packages at the
// requested level.
func setupLogging(debugLevel string) error {
	level, ok := slog.LevelFromString(debugLevel)
	if !ok {
		return fmt.Errorf("invalid debug level %q", debugLevel)
	}
	backend := slog.NewBackend(os.Stderr)
	txsignLog := backend.Logger("TXSN")
	txsignLog.SetLevel(level)
	txsign.UseLogger(txsignLog)
	reqsignLog := backend.Logger("RQSN")
	reqsignLog.SetLevel(level)
	reqsign.UseLogger(reqsignLog)
	return nil
}

// promptSecret prompts on stderr and reads a line without echo from the
// terminal on stdin.
func promptSecret(prompt string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// chainParams returns the network parameters selected by the config.
func chainParams(cfg *config) (*chaincfg.Params, error) {
	if cfg.TestNet && cfg.SimNet {
		return nil, errors.New("the testnet and simnet params can't be " +
			"used together")
	}
	switch {
	case cfg.TestNet:
		return &chaincfg.TestNetParams, nil
	case cfg.SimNet:
		return &chaincfg.SimNetParams, nil
	}
	return &chaincfg.MainNetParams, nil
}

// promptPrivKey obtains the signing key, either directly as hex or by
// deriving it from a prompted mnemonic at the BIP44 path
// m/44'/coin'/account'/0/index.
func promptPrivKey(cfg *config, params *chaincfg.Params) (*secp256k1.PrivateKey, error) {
	if !cfg.Mnemonic {
		keyHex, err := promptSecret("Private key (hex)")
		if err != nil {
			return nil, err
		}
		trimmed := strings.TrimPrefix(strings.TrimSpace(keyHex), "0x")
		keyBytes, err := hex.DecodeString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("malformed private key hex: %w", err)
		}
		return secp256k1.PrivKeyFromBytes(keyBytes)
	}

	mnemonic, err := promptSecret("Mnemonic")
	if err != nil {
		return nil, err
	}
	passphrase, err := promptSecret("Passphrase (may be empty)")
	if err != nil {
		return nil, err
	}
	seed := walletseed.SeedFromMnemonic(mnemonic, passphrase)
	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, err
	}
	defer master.Zero()
	key, err := master.Derive(
		hdkeychain.HardenedKeyStart+44,
		hdkeychain.HardenedKeyStart+params.HDCoinType,
		hdkeychain.HardenedKeyStart+cfg.Account,
		0,
		cfg.Index,
	)
	if err != nil {
		return nil, err
	}
	defer key.Zero()
	return key.PrivKey()
}

// readInput reads the input file named by the config, or stdin when it
// is "-".
func readInput(cfg *config) ([]byte, error) {
	if cfg.Input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(cfg.Input)
}

// printJSON writes the value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// directDoc is the JSON form of a direct-mode sign document accepted on
// the command line.  The byte fields are base64 per the standard
// library JSON rules.
type directDoc struct {
	BodyBytes     []byte `json:"body_bytes"`
	AuthInfoBytes []byte `json:"auth_info_bytes"`
	ChainID       string `json:"chain_id"`
	AccountNumber uint64 `json:"account_number"`
}

func signRequest(cfg *config, params *chaincfg.Params) error {
	if cfg.Transfer == "" {
		return errors.New("the request command requires --transfer")
	}
	if _, _, err := address.Decode(cfg.Transfer); err != nil {
		return fmt.Errorf("invalid transfer address: %w", err)
	}
	priv, err := promptPrivKey(cfg, params)
	if err != nil {
		return err
	}
	defer priv.Zero()
	payload, err := readInput(cfg)
	if err != nil {
		return err
	}

	signer := reqsign.NewSignerFromKey(priv)
	sig, tsNano, err := signer.Sign(payload, cfg.Transfer)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Signature string `json:"signature"`
		Timestamp int64  `json:"timestamp"`
	}{Signature: sig, Timestamp: tsNano})
}

func signAmino(cfg *config, params *chaincfg.Params) error {
	if cfg.Signer == "" {
		return errors.New("the amino command requires --signer")
	}
	input, err := readInput(cfg)
	if err != nil {
		return err
	}
	var doc txsign.StdSignDoc
	if err := json.Unmarshal(input, &doc); err != nil {
		return fmt.Errorf("malformed sign document: %w", err)
	}
	priv, err := promptPrivKey(cfg, params)
	if err != nil {
		return err
	}
	defer priv.Zero()
	env, err := txsign.SignAmino(priv, &doc, cfg.Signer, params)
	if err != nil {
		return err
	}
	return printJSON(env)
}

func signDirect(cfg *config, params *chaincfg.Params) error {
	if cfg.Signer == "" {
		return errors.New("the direct command requires --signer")
	}
	input, err := readInput(cfg)
	if err != nil {
		return err
	}
	var jsonDoc directDoc
	if err := json.Unmarshal(input, &jsonDoc); err != nil {
		return fmt.Errorf("malformed sign document: %w", err)
	}
	priv, err := promptPrivKey(cfg, params)
	if err != nil {
		return err
	}
	defer priv.Zero()
	doc := txsign.SignDoc{
		BodyBytes:     jsonDoc.BodyBytes,
		AuthInfoBytes: jsonDoc.AuthInfoBytes,
		ChainID:       jsonDoc.ChainID,
		AccountNumber: jsonDoc.AccountNumber,
	}
	env, err := txsign.SignDirect(priv, &doc, cfg.Signer, params)
	if err != nil {
		return err
	}
	return printJSON(env)
}

func printAddr(cfg *config, params *chaincfg.Params) error {
	priv, err := promptPrivKey(cfg, params)
	if err != nil {
		return err
	}
	defer priv.Zero()
	addr, err := address.FromPubKey(priv.PubKey(), params)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Address string `json:"address"`
		PubKey  string `json:"pubkey"`
	}{
		Address: addr,
		PubKey:  hex.EncodeToString(priv.PubKey().SerializeCompressed()),
	})
}

func genSeed() error {
	seed, err := walletseed.GenerateRandomSeed(hdkeychain.RecommendedSeedLen)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(seed))
	return nil
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] COMMAND"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("infsign version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	if len(args) != 1 {
		usage(parser)
	}

	if err := setupLogging(cfg.DebugLevel); err != nil {
		fatalf("%v", err)
	}
	params, err := chainParams(&cfg)
	if err != nil {
		fatalf("%v", err)
	}

	switch args[0] {
	case "request":
		err = signRequest(&cfg, params)
	case "amino":
		err = signAmino(&cfg, params)
	case "direct":
		err = signDirect(&cfg, params)
	case "addr":
		err = printAddr(&cfg, params)
	case "genseed":
		err = genSeed()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		usage(parser)
	}
	if err != nil {
		fatalf("%v", err)
	}
}
