package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	ethabi "github.com/branched-services/go-ethabi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"
)

var lenientFlag = &cli.BoolFlag{
	Name:  "lenient",
	Usage: "accept decimal integer values in addition to full-width hex",
}

var typesFlag = &cli.StringSliceFlag{
	Name:    "types",
	Aliases: []string{"t"},
	Usage:   "parameter type, repeat once per value",
}

var topicsFlag = &cli.StringSliceFlag{
	Name:    "topics",
	Aliases: []string{"l"},
	Usage:   "log topic, repeat once per topic",
}

var encodeCommand = &cli.Command{
	Name:  "encode",
	Usage: "Encode parameters into call data",
	Subcommands: []*cli.Command{
		{
			Name:      "function",
			Usage:     "Encode a call to a function from a contract description",
			ArgsUsage: "<abi.json> <name|signature> [value...]",
			Flags:     []cli.Flag{lenientFlag},
			Action:    encodeFunction,
		},
		{
			Name:      "params",
			Usage:     "Encode free-standing parameters",
			ArgsUsage: "[type value]...",
			Flags:     []cli.Flag{lenientFlag},
			Action:    encodeParams,
		},
	},
}

var decodeCommand = &cli.Command{
	Name:  "decode",
	Usage: "Decode call data, return data or logs",
	Subcommands: []*cli.Command{
		{
			Name:      "function",
			Usage:     "Decode the return data of a function call",
			ArgsUsage: "<abi.json> <name|signature> <data>",
			Action:    decodeFunction,
		},
		{
			Name:      "params",
			Usage:     "Decode free-standing parameters",
			ArgsUsage: "-t <type>... <data>",
			Flags:     []cli.Flag{typesFlag},
			Action:    decodeParams,
		},
		{
			Name:      "log",
			Usage:     "Decode an event log from a contract description",
			ArgsUsage: "-l <topic>... <abi.json> <event|signature> <data>",
			Flags:     []cli.Flag{topicsFlag},
			Action:    decodeLog,
		},
	},
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ethabi",
		Usage:    "Ethereum contract call data encoder and decoder",
		Commands: []*cli.Command{encodeCommand, decodeCommand},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func encodeFunction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: encode function <abi.json> <name|signature> [value...]")
	}
	contract, err := loadContract(args[0])
	if err != nil {
		return err
	}
	fn, err := contract.ResolveFunction(args[1])
	if err != nil {
		return err
	}
	values := args[2:]
	if len(values) != len(fn.Inputs) {
		return fmt.Errorf("function %s takes %d arguments, got %d", fn.Name, len(fn.Inputs), len(values))
	}
	tk := tokenizerFor(ctx)
	tokens := make([]ethabi.Token, len(values))
	for i, value := range values {
		tok, err := tk.Tokenize(fn.Inputs[i].Type, value)
		if err != nil {
			return err
		}
		tokens[i] = tok
	}
	data, err := fn.EncodeInput(tokens)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(data))
	return nil
}

func encodeParams(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) == 0 || len(args)%2 != 0 {
		return fmt.Errorf("usage: encode params [type value]...")
	}
	tk := tokenizerFor(ctx)
	tokens := make([]ethabi.Token, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		typ, err := ethabi.ParseType(args[i])
		if err != nil {
			return err
		}
		tok, err := tk.Tokenize(typ, args[i+1])
		if err != nil {
			return err
		}
		tokens = append(tokens, tok)
	}
	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(ethabi.Encode(tokens)))
	return nil
}

func decodeFunction(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) != 3 {
		return fmt.Errorf("usage: decode function <abi.json> <name|signature> <data>")
	}
	contract, err := loadContract(args[0])
	if err != nil {
		return err
	}
	fn, err := contract.ResolveFunction(args[1])
	if err != nil {
		return err
	}
	data, err := hexData(args[2])
	if err != nil {
		return err
	}
	tokens, err := fn.DecodeOutput(data)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		fmt.Fprintf(ctx.App.Writer, "%s %s\n", fn.Outputs[i].Type.String(), tok.String())
	}
	return nil
}

func decodeParams(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("usage: decode params -t <type>... <data>")
	}
	specs := ctx.StringSlice(typesFlag.Name)
	if len(specs) == 0 {
		return fmt.Errorf("at least one -t type is required")
	}
	types := make([]ethabi.Type, len(specs))
	for i, spec := range specs {
		typ, err := ethabi.ParseType(spec)
		if err != nil {
			return err
		}
		types[i] = typ
	}
	data, err := hexData(args[0])
	if err != nil {
		return err
	}
	tokens, err := ethabi.Decode(types, data)
	if err != nil {
		return err
	}
	for i, tok := range tokens {
		fmt.Fprintf(ctx.App.Writer, "%s %s\n", types[i].String(), tok.String())
	}
	return nil
}

func decodeLog(ctx *cli.Context) error {
	args := ctx.Args().Slice()
	if len(args) != 3 {
		return fmt.Errorf("usage: decode log -l <topic>... <abi.json> <event|signature> <data>")
	}
	contract, err := loadContract(args[0])
	if err != nil {
		return err
	}
	ev, err := contract.ResolveEvent(args[1])
	if err != nil {
		return err
	}
	topics := make([]common.Hash, 0, len(ctx.StringSlice(topicsFlag.Name)))
	for _, spec := range ctx.StringSlice(topicsFlag.Name) {
		topic, err := hexTopic(spec)
		if err != nil {
			return err
		}
		topics = append(topics, topic)
	}
	data, err := hexData(args[2])
	if err != nil {
		return err
	}
	params, err := ev.ParseLog(ethabi.RawLog{Topics: topics, Data: data})
	if err != nil {
		return err
	}
	for _, p := range params {
		fmt.Fprintf(ctx.App.Writer, "%s %s\n", p.Name, p.Value.String())
	}
	return nil
}

func tokenizerFor(ctx *cli.Context) *ethabi.Tokenizer {
	if ctx.Bool(lenientFlag.Name) {
		return ethabi.NewTokenizer(ethabi.WithLenientParsing())
	}
	return ethabi.NewTokenizer()
}

func loadContract(path string) (*ethabi.Contract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ethabi.LoadContract(f)
}

func hexData(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid hex data %q: %v", s, err)
	}
	return data, nil
}

func hexTopic(s string) (common.Hash, error) {
	b, err := hexData(s)
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("topic %q is not %d bytes", s, common.HashLength)
	}
	return common.BytesToHash(b), nil
}
