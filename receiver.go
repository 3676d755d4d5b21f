package main

import (
	"context"

	"github.com/mintfield/nftd/ledger"
	"github.com/sirupsen/logrus"
)

// LogReceiver stands in for the downstream contract callback of a
// send_nft call.
type LogReceiver struct{}

func (lr *LogReceiver) ProcessReceive(ctx context.Context, recv *ledger.ReceiveNotification) {
	logrus.Infof("receive %s token %s %s -> %s msg %d bytes",
		recv.EventId, recv.TokenId, recv.Sender, recv.Contract, len(recv.Msg))
}
