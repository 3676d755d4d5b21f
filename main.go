package main

import (
	"context"
	"flag"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/mintfield/nftd/ledger"
	"github.com/mintfield/nftd/store"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()

	bp := flag.String("d", "~/.nftd/data", "database directory path")
	cp := flag.String("c", "~/.nftd/config.toml", "configuration file path")
	flag.Parse()

	if strings.HasPrefix(*cp, "~/") {
		usr, _ := user.Current()
		*cp = filepath.Join(usr.HomeDir, (*cp)[2:])
	}
	conf, err := Setup(*cp)
	if err != nil {
		logrus.Fatalf("Setup %v", err)
	}

	if strings.HasPrefix(*bp, "~/") {
		usr, _ := user.Current()
		*bp = filepath.Join(usr.HomeDir, (*bp)[2:])
	}
	db, err := store.OpenBadger(ctx, *bp)
	if err != nil {
		logrus.Fatalf("OpenBadger %v", err)
	}
	defer db.Close()

	contract := ledger.NewContract(db)
	contract.AddReceiver(&LogReceiver{})

	meta, err := db.ReadContractMeta()
	if err != nil {
		logrus.Fatalf("ReadContractMeta %v", err)
	}
	if meta == nil {
		price, err := ledger.NewCoin(conf.Contract.MintPrice.Amount, conf.Contract.MintPrice.Denom)
		if err != nil {
			logrus.Fatalf("invalid mint price %v", err)
		}
		err = contract.Instantiate(&ledger.InstantiateMsg{
			Name:      conf.Contract.Name,
			Symbol:    conf.Contract.Symbol,
			Minter:    conf.Contract.Minter,
			MaxMints:  conf.Contract.MaxMints,
			MintPrice: price,
			TokenURI:  conf.Contract.TokenURI,
		})
		if err != nil {
			logrus.Fatalf("Instantiate %v", err)
		}
	}

	clock, err := ledger.NewClock(db)
	if err != nil {
		logrus.Fatalf("NewClock %v", err)
	}

	err = ServeRPC(ctx, contract, clock, conf.RPC.Listen)
	if err != nil {
		logrus.Fatalf("ServeRPC %v", err)
	}
}
