// xemwallet-cli builds wallet transactions and talks to a node's REST
// API. Signing happens outside: built transactions are printed as JSON
// for an external signer, and signed payloads come back in through the
// announce command.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/xemtech/xemwallet/config"
	"github.com/xemtech/xemwallet/internal/log"
	"github.com/xemtech/xemwallet/internal/nis"
	"github.com/xemtech/xemwallet/internal/registry"
	"github.com/xemtech/xemwallet/internal/storage"
	"github.com/xemtech/xemwallet/internal/wallet"
	"github.com/xemtech/xemwallet/pkg/fees"
	"github.com/xemtech/xemwallet/pkg/tx"
	"github.com/xemtech/xemwallet/pkg/types"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg := config.DefaultMainnet()

	// Scan for global flags before the subcommand. Flags beat the config
	// file, so overrides are collected here and applied after the file.
	var nodeFlag, datadirFlag, networkFlag string
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--node" && len(args) > 1:
			nodeFlag = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--node="):
			nodeFlag = args[0][len("--node="):]
			args = args[1:]
		case args[0] == "--datadir" && len(args) > 1:
			datadirFlag = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--datadir="):
			datadirFlag = args[0][len("--datadir="):]
			args = args[1:]
		case args[0] == "--network" && len(args) > 1:
			networkFlag = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			networkFlag = args[0][len("--network="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if datadirFlag != "" {
		cfg.DataDir = datadirFlag
	}
	values, err := config.LoadFile(cfg.ConfigFile())
	if err != nil {
		fatal("config: %v", err)
	}
	if err := config.ApplyFileConfig(cfg, values); err != nil {
		fatal("config: %v", err)
	}
	if nodeFlag != "" {
		cfg.Node.Endpoint = nodeFlag
	}
	if networkFlag != "" {
		cfg.Network = networkFlag
	}
	if datadirFlag != "" {
		cfg.DataDir = datadirFlag
	}
	if err := config.Validate(cfg); err != nil {
		fatal("config: %v", err)
	}
	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("init logging: %v", err)
	}

	network, _ := types.ParseNetwork(cfg.Network)
	client := nis.NewWithTimeout(cfg.Node.Endpoint, cfg.Node.Timeout)

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "status":
		cmdStatus(client)
	case "time":
		cmdTime(client)
	case "account":
		cmdAccount(client, cmdArgs)
	case "mosaic":
		cmdMosaic(client, cfg, cmdArgs)
	case "fee":
		cmdFee(cfg, cmdArgs)
	case "build":
		cmdBuild(client, cfg, network, cmdArgs)
	case "announce":
		cmdAnnounce(client, cmdArgs)
	case "wallet":
		cmdWallet(network, cfg.KeystoreDir(), cmdArgs)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: xemwallet-cli [global flags] <command> [flags]

Global flags:
  --node <url>        Node REST endpoint (default: http://localhost:7890)
  --datadir <path>    Data directory (default: ~/.xemwallet)
  --network <net>     mainnet (default), testnet or mijin

Commands:
  status                          Show node status and chain height
  time                            Show the node's network time
  account <address>               Show account balance and multisig info

  mosaic refresh --namespace <ns> Pull a namespace's mosaics into the local cache
  mosaic list                     List cached mosaic definitions

  fee transfer --amount <µxem> [--message <hex>] [--mosaic ns:name:qty ...]
                                  Preview a transfer's minimum fee

  build transfer --signer <pubkey> --to <addr> --amount <µxem>
                 [--message <hex>] [--mosaic ns:name:qty ...] [--multisig <pubkey>]
  build namespace --signer <pubkey> --part <name> [--parent <ns>] [--multisig <pubkey>]
  build mosaic --signer <pubkey> --id ns:name [--description <text>]
               [--divisibility <n>] [--supply <n>] [--mutable] [--transferable]
               [--multisig <pubkey>]
  build supply --signer <pubkey> --id ns:name --delta <n> [--decrease] [--multisig <pubkey>]
  build importance --signer <pubkey> --remote <pubkey> [--deactivate] [--multisig <pubkey>]
  build modify-multisig --signer <pubkey> [--add <pubkey> ...] [--remove <pubkey> ...]
               [--min-delta <n>] [--multisig <pubkey>]
  build cosign --signer <pubkey> --account <addr> --hash <hex>
                                  Build a transaction (JSON on stdout, ready to sign)

  announce --data <hex> --signature <hex>
                                  Submit an externally signed transaction

  wallet create --name <n> [--label <l>]     Create a key (prints mnemonic backup)
  wallet import --name <n> --mnemonic "..."  Restore a key from its mnemonic
  wallet bind --name <n> --public-key <hex>  Attach the signer-reported public key
  wallet list                                List wallets
  wallet info --name <n>                     Show wallet metadata
  wallet export --name <n>                   Print the mnemonic backup
  wallet delete --name <n>                   Delete a wallet file
`)
}

// ── status / time / account ─────────────────────────────────────────────

func cmdStatus(client *nis.Client) {
	if err := client.Heartbeat(); err != nil {
		fatal("%v", err)
	}
	height, err := client.ChainHeight()
	if err != nil {
		fatal("%v", err)
	}
	now, err := client.NetworkTime()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Node:         alive\n")
	fmt.Printf("Height:       %d\n", height)
	fmt.Printf("Network time: %d\n", now)
}

func cmdTime(client *nis.Client) {
	now, err := client.NetworkTime()
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(now)
}

func cmdAccount(client *nis.Client, args []string) {
	if len(args) < 1 {
		fatal("Usage: xemwallet-cli account <address>")
	}
	addr, err := types.ParseAddress(args[0])
	if err != nil {
		fatal("%v", err)
	}

	pair, err := client.Account(addr)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Address:  %s\n", addr.Pretty())
	fmt.Printf("Balance:  %s XEM\n", formatXem(pair.Account.Balance))
	fmt.Printf("Vested:   %s XEM\n", formatXem(pair.Account.VestedBalance))
	fmt.Printf("Status:   %s\n", pair.Meta.Status)
	if len(pair.Meta.Cosignatories) > 0 {
		fmt.Printf("Multisig account with %d cosignatories\n", len(pair.Meta.Cosignatories))
	}
	if len(pair.Meta.CosignatoryOf) > 0 {
		fmt.Printf("Cosignatory of %d accounts\n", len(pair.Meta.CosignatoryOf))
	}
}

// ── mosaic cache ────────────────────────────────────────────────────────

func openRegistry(cfg *config.Config) (*registry.Registry, func()) {
	db, err := storage.NewBadger(cfg.CacheDir())
	if err != nil {
		fatal("open cache: %v", err)
	}
	return registry.New(db), func() { db.Close() }
}

func cmdMosaic(client *nis.Client, cfg *config.Config, args []string) {
	if len(args) < 1 {
		fatal("Usage: xemwallet-cli mosaic <refresh|list> [flags]")
	}
	switch args[0] {
	case "refresh":
		fs := flag.NewFlagSet("mosaic refresh", flag.ExitOnError)
		namespace := fs.String("namespace", "", "Namespace to refresh")
		fs.Parse(args[1:])
		if *namespace == "" {
			fatal("Usage: xemwallet-cli mosaic refresh --namespace <ns>")
		}

		reg, closeDB := openRegistry(cfg)
		defer closeDB()
		n, err := reg.Refresh(client, *namespace)
		if err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cached %d mosaics from %s\n", n, *namespace)

	case "list":
		reg, closeDB := openRegistry(cfg)
		defer closeDB()
		snap, err := reg.Snapshot()
		if err != nil {
			fatal("%v", err)
		}
		for name, info := range snap {
			fmt.Printf("%-40s supply=%d divisibility=%d\n", name, info.Supply, info.Divisibility)
		}

	default:
		fatal("Unknown mosaic command: %s", args[0])
	}
}

// ── fee preview ─────────────────────────────────────────────────────────

func cmdFee(cfg *config.Config, args []string) {
	if len(args) < 1 || args[0] != "transfer" {
		fatal("Usage: xemwallet-cli fee transfer --amount <µxem> [--message <hex>] [--mosaic ns:name:qty ...]")
	}

	fs := flag.NewFlagSet("fee transfer", flag.ExitOnError)
	amount := fs.Uint64("amount", 0, "Amount in µXEM")
	message := fs.String("message", "", "Hex message payload")
	var mosaics mosaicFlags
	fs.Var(&mosaics, "mosaic", "Mosaic attachment ns:name:qty (repeatable)")
	fs.Parse(args[1:])

	var units uint64
	if len(mosaics) > 0 {
		reg, closeDB := openRegistry(cfg)
		defer closeDB()
		snap, err := reg.Snapshot()
		if err != nil {
			fatal("%v", err)
		}
		units, err = fees.MosaicTransferFee(*amount, snap, mosaics)
		if err != nil {
			fatal("%v", err)
		}
	} else {
		units = fees.MinimumTransferFee(*amount)
	}
	units += fees.MessageFee(*message)

	fmt.Printf("Fee: %s XEM (%d units)\n", formatXem(fees.Scale(units)), units)
}

// ── build ───────────────────────────────────────────────────────────────

func cmdBuild(client *nis.Client, cfg *config.Config, network types.Network, args []string) {
	if len(args) < 1 {
		fatal("Usage: xemwallet-cli build <transfer|namespace|mosaic|supply|importance|modify-multisig|cosign> [flags]")
	}

	now, err := client.NetworkTime()
	if err != nil {
		fatal("network time: %v", err)
	}
	builder := tx.NewBuilder(network)

	var entity tx.Entity
	switch args[0] {
	case "transfer":
		entity = buildTransfer(builder, cfg, now, args[1:])
	case "namespace":
		entity = buildNamespace(builder, now, args[1:])
	case "mosaic":
		entity = buildMosaicDefinition(builder, now, args[1:])
	case "supply":
		entity = buildSupplyChange(builder, now, args[1:])
	case "importance":
		entity = buildImportance(builder, now, args[1:])
	case "modify-multisig":
		entity = buildModifyMultisig(builder, now, args[1:])
	case "cosign":
		entity = buildCosign(builder, now, args[1:])
	default:
		fatal("Unknown build command: %s", args[0])
	}

	out, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		fatal("encode transaction: %v", err)
	}
	fmt.Println(string(out))
}

// signingFlags registers the flags shared by every build subcommand.
func signingFlags(fs *flag.FlagSet) (signer, multisig *string) {
	signer = fs.String("signer", "", "Signing public key (hex)")
	multisig = fs.String("multisig", "", "Multisig account public key (hex); wraps the transaction")
	return
}

func parseSigning(signer, multisig string) tx.Signing {
	if signer == "" {
		fatal("--signer is required")
	}
	pub, err := types.HexToPublicKey(signer)
	if err != nil {
		fatal("signer: %v", err)
	}
	s := tx.Signing{Signer: pub}
	if multisig != "" {
		m, err := types.HexToPublicKey(multisig)
		if err != nil {
			fatal("multisig: %v", err)
		}
		s.Multisig = &m
	}
	return s
}

func buildTransfer(builder *tx.Builder, cfg *config.Config, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build transfer", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	to := fs.String("to", "", "Recipient address")
	amount := fs.Uint64("amount", 0, "Amount in µXEM")
	message := fs.String("message", "", "Hex message payload")
	var mosaics mosaicFlags
	fs.Var(&mosaics, "mosaic", "Mosaic attachment ns:name:qty (repeatable)")
	fs.Parse(args)

	var snap fees.RegistryMap
	if len(mosaics) > 0 {
		reg, closeDB := openRegistry(cfg)
		defer closeDB()
		var err error
		snap, err = reg.Snapshot()
		if err != nil {
			fatal("%v", err)
		}
	}

	entity, err := builder.Transfer(now, tx.TransferIntent{
		Signing:        parseSigning(*signer, *multisig),
		Recipient:      *to,
		Amount:         *amount,
		MessagePayload: *message,
		Mosaics:        mosaics,
	}, snap)
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildNamespace(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build namespace", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	part := fs.String("part", "", "New namespace part")
	parent := fs.String("parent", "", "Parent namespace (omit for a root)")
	fs.Parse(args)

	entity, err := builder.ProvisionNamespace(now, tx.ProvisionNamespaceIntent{
		Signing: parseSigning(*signer, *multisig),
		Parent:  *parent,
		NewPart: *part,
	})
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildMosaicDefinition(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build mosaic", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	id := fs.String("id", "", "Mosaic id ns:name")
	description := fs.String("description", "", "Mosaic description")
	divisibility := fs.Uint("divisibility", 0, "Decimal places")
	supply := fs.Uint64("supply", 0, "Initial supply in whole units")
	mutable := fs.Bool("mutable", false, "Supply can change later")
	transferable := fs.Bool("transferable", false, "Third parties may transfer")
	fs.Parse(args)

	mid, err := types.ParseMosaicID(*id)
	if err != nil {
		fatal("%v", err)
	}
	entity, err := builder.MosaicDefinition(now, tx.MosaicDefinitionIntent{
		Signing:     parseSigning(*signer, *multisig),
		ID:          mid,
		Description: *description,
		Properties: tx.MosaicProperties{
			Divisibility:  uint32(*divisibility),
			InitialSupply: *supply,
			SupplyMutable: *mutable,
			Transferable:  *transferable,
		},
	})
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildSupplyChange(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build supply", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	id := fs.String("id", "", "Mosaic id ns:name")
	delta := fs.Uint64("delta", 0, "Supply change in whole units")
	decrease := fs.Bool("decrease", false, "Shrink the supply instead of growing it")
	fs.Parse(args)

	mid, err := types.ParseMosaicID(*id)
	if err != nil {
		fatal("%v", err)
	}
	direction := tx.SupplyIncrease
	if *decrease {
		direction = tx.SupplyDecrease
	}
	entity, err := builder.SupplyChange(now, tx.SupplyChangeIntent{
		Signing:   parseSigning(*signer, *multisig),
		MosaicID:  mid,
		Direction: direction,
		Delta:     *delta,
	})
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildImportance(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build importance", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	remote := fs.String("remote", "", "Remote harvesting public key (hex)")
	deactivate := fs.Bool("deactivate", false, "Revoke the delegation")
	fs.Parse(args)

	pub, err := types.HexToPublicKey(*remote)
	if err != nil {
		fatal("remote: %v", err)
	}
	mode := tx.ImportanceActivate
	if *deactivate {
		mode = tx.ImportanceDeactivate
	}
	entity, err := builder.ImportanceTransfer(now, tx.ImportanceTransferIntent{
		Signing:       parseSigning(*signer, *multisig),
		Mode:          mode,
		RemoteAccount: pub,
	})
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildModifyMultisig(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build modify-multisig", flag.ExitOnError)
	signer, multisig := signingFlags(fs)
	var adds, removes keyFlags
	fs.Var(&adds, "add", "Cosignatory public key to add (repeatable)")
	fs.Var(&removes, "remove", "Cosignatory public key to remove (repeatable)")
	minDelta := fs.Int("min-delta", 0, "Relative minimum-cosignatories change")
	fs.Parse(args)

	var mods []tx.CosignatoryModification
	for _, k := range adds {
		mods = append(mods, tx.CosignatoryModification{ModificationType: tx.ModificationAdd, CosignatoryAccount: k})
	}
	for _, k := range removes {
		mods = append(mods, tx.CosignatoryModification{ModificationType: tx.ModificationRemove, CosignatoryAccount: k})
	}

	intent := tx.MultisigModificationIntent{
		Signing:       parseSigning(*signer, *multisig),
		Modifications: mods,
	}
	if *minDelta != 0 {
		intent.RelativeChange = minDelta
	}

	entity, err := builder.MultisigModification(now, intent)
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

func buildCosign(builder *tx.Builder, now int64, args []string) tx.Entity {
	fs := flag.NewFlagSet("build cosign", flag.ExitOnError)
	signer := fs.String("signer", "", "Cosigning public key (hex)")
	account := fs.String("account", "", "Multisig account address")
	hash := fs.String("hash", "", "Pending transaction hash (hex)")
	fs.Parse(args)

	if *signer == "" {
		fatal("--signer is required")
	}
	pub, err := types.HexToPublicKey(*signer)
	if err != nil {
		fatal("signer: %v", err)
	}
	h, err := types.HexToHash(*hash)
	if err != nil {
		fatal("hash: %v", err)
	}
	entity, err := builder.Cosignature(now, tx.CosignatureIntent{
		Signer:          pub,
		MultisigAccount: *account,
		TransactionHash: h,
	})
	if err != nil {
		fatal("%v", err)
	}
	return entity
}

// ── announce ────────────────────────────────────────────────────────────

func cmdAnnounce(client *nis.Client, args []string) {
	fs := flag.NewFlagSet("announce", flag.ExitOnError)
	data := fs.String("data", "", "Serialized transaction (hex)")
	signature := fs.String("signature", "", "Detached signature (hex)")
	fs.Parse(args)

	payload, err := hex.DecodeString(*data)
	if err != nil || len(payload) == 0 {
		fatal("--data must be non-empty hex")
	}
	sig, err := hex.DecodeString(*signature)
	if err != nil || len(sig) == 0 {
		fatal("--signature must be non-empty hex")
	}

	result, err := client.Announce(payload, sig)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Accepted: %s\n", result.Message)
	if !result.TransactionHash.Data.IsZero() {
		fmt.Printf("Hash:     %s\n", result.TransactionHash.Data)
	}
}

// ── wallet ──────────────────────────────────────────────────────────────

func cmdWallet(network types.Network, ksDir string, args []string) {
	if len(args) < 1 {
		fatal("Usage: xemwallet-cli wallet <create|import|bind|list|info|export|delete> [flags]")
	}

	ks, err := wallet.NewKeystore(ksDir)
	if err != nil {
		fatal("open keystore: %v", err)
	}

	switch args[0] {
	case "create":
		cmdWalletCreate(ks, network, args[1:])
	case "import":
		cmdWalletImport(ks, network, args[1:])
	case "bind":
		cmdWalletBind(ks, args[1:])
	case "list":
		cmdWalletList(ks)
	case "info":
		cmdWalletInfo(ks, args[1:])
	case "export":
		cmdWalletExport(ks, args[1:])
	case "delete":
		cmdWalletDelete(ks, args[1:])
	default:
		fatal("Unknown wallet command: %s", args[0])
	}
}

func cmdWalletCreate(ks *wallet.Keystore, network types.Network, args []string) {
	fs := flag.NewFlagSet("wallet create", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	label := fs.String("label", "", "Display label")
	fs.Parse(args)
	if *name == "" {
		fatal("Usage: xemwallet-cli wallet create --name <name> [--label <label>]")
	}

	mnemonic, err := wallet.GenerateMnemonic()
	if err != nil {
		fatal("generate mnemonic: %v", err)
	}
	key, err := wallet.MnemonicToKey(mnemonic)
	if err != nil {
		fatal("derive key: %v", err)
	}

	fmt.Println("Mnemonic (write this down!):")
	fmt.Printf("  %s\n\n", mnemonic)

	password := readPasswordTwice()
	acct := wallet.Account{Label: *label, Network: network}
	if err := ks.Create(*name, acct, key, password, wallet.DefaultParams()); err != nil {
		fatal("create wallet: %v", err)
	}
	zero(key)

	fmt.Printf("Wallet created: %s\n", *name)
	fmt.Println("Run `wallet bind` with the public key your signer reports for this key.")
}

func cmdWalletImport(ks *wallet.Keystore, network types.Network, args []string) {
	fs := flag.NewFlagSet("wallet import", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	label := fs.String("label", "", "Display label")
	mnemonic := fs.String("mnemonic", "", "24-word mnemonic backup")
	fs.Parse(args)
	if *name == "" || *mnemonic == "" {
		fatal("Usage: xemwallet-cli wallet import --name <name> --mnemonic \"word1 word2 ...\"")
	}
	if !wallet.ValidateMnemonic(*mnemonic) {
		fatal("invalid mnemonic")
	}

	key, err := wallet.MnemonicToKey(*mnemonic)
	if err != nil {
		fatal("%v", err)
	}

	password := readPasswordTwice()
	acct := wallet.Account{Label: *label, Network: network}
	if err := ks.Create(*name, acct, key, password, wallet.DefaultParams()); err != nil {
		fatal("create wallet: %v", err)
	}
	zero(key)

	fmt.Printf("Wallet imported: %s\n", *name)
}

func cmdWalletBind(ks *wallet.Keystore, args []string) {
	fs := flag.NewFlagSet("wallet bind", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	pubHex := fs.String("public-key", "", "Public key reported by the signer (hex)")
	fs.Parse(args)
	if *name == "" || *pubHex == "" {
		fatal("Usage: xemwallet-cli wallet bind --name <name> --public-key <hex>")
	}

	pub, err := types.HexToPublicKey(*pubHex)
	if err != nil {
		fatal("%v", err)
	}
	if err := ks.Bind(*name, pub); err != nil {
		fatal("%v", err)
	}

	acct, err := ks.Info(*name)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Address: %s\n", acct.Address.Pretty())
}

func cmdWalletList(ks *wallet.Keystore) {
	names, err := ks.List()
	if err != nil {
		fatal("%v", err)
	}
	for _, name := range names {
		acct, err := ks.Info(name)
		if err != nil {
			fmt.Printf("%-20s (unreadable: %v)\n", name, err)
			continue
		}
		addr := "unbound"
		if !acct.Address.IsZero() {
			addr = acct.Address.Pretty()
		}
		fmt.Printf("%-20s %-10s %s\n", name, acct.Network, addr)
	}
}

func cmdWalletInfo(ks *wallet.Keystore, args []string) {
	fs := flag.NewFlagSet("wallet info", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)
	if *name == "" {
		fatal("Usage: xemwallet-cli wallet info --name <name>")
	}

	acct, err := ks.Info(*name)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Label:      %s\n", acct.Label)
	fmt.Printf("Network:    %s\n", acct.Network)
	if acct.PublicKey.IsZero() {
		fmt.Println("Public key: unbound")
	} else {
		fmt.Printf("Public key: %s\n", acct.PublicKey)
		fmt.Printf("Address:    %s\n", acct.Address.Pretty())
	}
}

func cmdWalletExport(ks *wallet.Keystore, args []string) {
	fs := flag.NewFlagSet("wallet export", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)
	if *name == "" {
		fatal("Usage: xemwallet-cli wallet export --name <name>")
	}

	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	key, _, err := ks.Load(*name, password)
	if err != nil {
		fatal("%v", err)
	}
	mnemonic, err := wallet.KeyToMnemonic(key)
	zero(key)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(mnemonic)
}

func cmdWalletDelete(ks *wallet.Keystore, args []string) {
	fs := flag.NewFlagSet("wallet delete", flag.ExitOnError)
	name := fs.String("name", "", "Wallet name")
	fs.Parse(args)
	if *name == "" {
		fatal("Usage: xemwallet-cli wallet delete --name <name>")
	}
	if err := ks.Delete(*name); err != nil {
		fatal("%v", err)
	}
	fmt.Printf("Deleted: %s\n", *name)
}

// ── flag helpers ────────────────────────────────────────────────────────

// mosaicFlags collects repeated --mosaic ns:name:qty flags.
type mosaicFlags []types.MosaicAttachment

func (m *mosaicFlags) String() string { return fmt.Sprint([]types.MosaicAttachment(*m)) }

func (m *mosaicFlags) Set(value string) error {
	i := strings.LastIndex(value, ":")
	if i < 0 {
		return fmt.Errorf("expected ns:name:qty, got %q", value)
	}
	id, err := types.ParseMosaicID(value[:i])
	if err != nil {
		return err
	}
	qty, err := strconv.ParseUint(value[i+1:], 10, 64)
	if err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*m = append(*m, types.MosaicAttachment{MosaicID: id, Quantity: qty})
	return nil
}

// keyFlags collects repeated public-key flags.
type keyFlags []types.PublicKey

func (k *keyFlags) String() string { return fmt.Sprintf("%d keys", len(*k)) }

func (k *keyFlags) Set(value string) error {
	pub, err := types.HexToPublicKey(value)
	if err != nil {
		return err
	}
	*k = append(*k, pub)
	return nil
}

// ── misc helpers ────────────────────────────────────────────────────────

func formatXem(microXem uint64) string {
	whole := microXem / fees.MicroXemPerXem
	frac := microXem % fees.MicroXemPerXem
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%d.%06d", whole, frac), "0"), ".")
}

func readPasswordTwice() []byte {
	password, err := readPassword("Enter password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fatal("read password: %v", err)
	}
	if string(password) != string(confirm) {
		fatal("passwords do not match")
	}
	return password
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return password, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
