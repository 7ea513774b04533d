// Command txexec runs a single transaction against an in-memory world
// state and prints the resulting receipt as JSON. It exists to give the
// core transaction-execution library a runnable, exercised entry point.
//
// Usage:
//
//	txexec [flags]
//
// Flags:
//
//	--sender      Sender address, hex (default: a fixed demo address)
//	--to          Recipient address, hex (default: empty, contract creation)
//	--value       Value to transfer, in wei (default: 0)
//	--gasprice    Gas price, in wei (default: 1)
//	--gaslimit    Gas limit (default: 100000)
//	--nonce       Sender's nonce for this transaction (default: 0)
//	--data        Calldata or init code, hex (default: empty)
//	--balance     Sender's starting balance, in wei (default: 10^18)
//	--block       Block number the transaction executes in (default: 0)
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/eth2030/txproc/core"
	"github.com/eth2030/txproc/core/state"
	"github.com/eth2030/txproc/core/storage"
	"github.com/eth2030/txproc/core/types"
	"github.com/eth2030/txproc/core/vm"
	"github.com/eth2030/txproc/crypto"
	"github.com/eth2030/txproc/log"
	"github.com/eth2030/txproc/params"
	"github.com/holiman/uint256"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := newCustomFlagSet("txexec")

	sender := fs.String("sender", "0x00000000000000000000000000000000000001", "sender address")
	to := fs.String("to", "", "recipient address (empty = contract creation)")
	data := fs.String("data", "", "calldata or init code, hex")

	var value, gasPrice, gasLimit, nonce, balance, block uint64
	fs.Uint64Var(&value, "value", 0, "value to transfer, in wei")
	fs.Uint64Var(&gasPrice, "gasprice", 1, "gas price, in wei")
	fs.Uint64Var(&gasLimit, "gaslimit", 100000, "gas limit")
	fs.Uint64Var(&nonce, "nonce", 0, "sender nonce")
	fs.Uint64Var(&balance, "balance", 1_000_000_000_000_000_000, "sender starting balance, in wei")
	fs.Uint64Var(&block, "block", 0, "block number")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	senderAddr := types.HexToAddress(*sender)
	var toAddr *types.Address
	if *to != "" {
		addr := types.HexToAddress(*to)
		toAddr = &addr
	}

	codeData, err := hex.DecodeString(trim0x(*data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "txexec: invalid --data: %v\n", err)
		return 2
	}

	stateProvider := state.NewMemoryProvider()
	storageProvider := storage.NewMemoryProvider()
	stateProvider.CreateAccount(senderAddr)
	stateProvider.AddToBalance(senderAddr, uint256.NewInt(balance))

	header := &types.BlockHeader{
		Number:      block,
		GasLimit:    30_000_000,
		Beneficiary: types.HexToAddress("0x00000000000000000000000000000000000099"),
	}

	executor := core.NewTransactionExecutor(
		stateProvider,
		storageProvider,
		vm.NewStubVM(),
		params.AllForksEnabledConfig,
		nil,
	)

	tx := &types.Transaction{
		Hash:     crypto.Keccak256Hash(senderAddr.Bytes(), []byte{byte(nonce)}),
		Sender:   senderAddr,
		To:       toAddr,
		Nonce:    nonce,
		Value:    uint256.NewInt(value),
		GasPrice: uint256.NewInt(gasPrice),
		GasLimit: gasLimit,
		Data:     codeData,
	}

	receipt, err := executor.Execute(tx, header)
	if err != nil {
		log.Error("transaction rejected", "err", err)
		fmt.Fprintf(os.Stderr, "txexec: transaction rejected: %v\n", err)
		return 1
	}

	out, err := json.MarshalIndent(receiptViewOf(receipt), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "txexec: marshal receipt: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}

// receiptView is the JSON-friendly shape printed to stdout.
type receiptView struct {
	Status            uint64 `json:"status"`
	GasUsed           uint64 `json:"gasUsed"`
	CumulativeGasUsed uint64 `json:"cumulativeGasUsed"`
	Recipient         string `json:"recipient"`
	ContractAddress   string `json:"contractAddress,omitempty"`
	PostStateRoot     string `json:"postStateRoot,omitempty"`
	Bloom             string `json:"logsBloom"`
	LogCount          int    `json:"logCount"`
}

func receiptViewOf(r *types.Receipt) receiptView {
	v := receiptView{
		Status:            r.Status,
		GasUsed:           r.GasUsed,
		CumulativeGasUsed: r.CumulativeGasUsed,
		Recipient:         r.Recipient.Hex(),
		Bloom:             r.Bloom.Hex(),
		LogCount:          len(r.Logs),
	}
	if !r.ContractAddress.IsZero() {
		v.ContractAddress = r.ContractAddress.Hex()
	}
	if r.PostStateRoot != (types.Hash{}) {
		v.PostStateRoot = r.PostStateRoot.Hex()
	}
	return v
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
