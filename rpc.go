package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mintfield/nftd/ledger"
	"github.com/sirupsen/logrus"
)

// The HTTP layer is a thin trampoline, it decodes the envelope and
// hands the call to the contract with a fresh chain snapshot.
type rpcHandler struct {
	contract *ledger.Contract
	clock    *ledger.Clock
}

type executeRequest struct {
	Sender string             `json:"sender"`
	Funds  []ledger.Coin      `json:"funds,omitempty"`
	Msg    *ledger.ExecuteMsg `json:"msg"`
}

func ServeRPC(ctx context.Context, contract *ledger.Contract, clock *ledger.Clock, listen string) error {
	h := &rpcHandler{contract: contract, clock: clock}
	mux := http.NewServeMux()
	mux.HandleFunc("/execute", h.execute)
	mux.HandleFunc("/query", h.query)
	logrus.Infof("RPC listening on %s", listen)
	return http.ListenAndServe(listen, mux)
}

func (h *rpcHandler) execute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req executeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Msg == nil {
		http.Error(w, "invalid execute request", http.StatusBadRequest)
		return
	}
	env, err := h.clock.Env()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	info := &ledger.MessageInfo{Sender: req.Sender, Funds: req.Funds}
	err = h.contract.Execute(r.Context(), env, info, req.Msg)
	if err != nil {
		logrus.Errorf("execute %v", err)
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *rpcHandler) query(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var msg ledger.QueryMsg
	err := json.NewDecoder(r.Body).Decode(&msg)
	if err != nil {
		http.Error(w, "invalid query request", http.StatusBadRequest)
		return
	}
	env, err := h.clock.Env()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	res, err := h.contract.Query(env, &msg)
	if err != nil {
		http.Error(w, err.Error(), errStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
