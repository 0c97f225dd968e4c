package contract

import (
	"fmt"

	"presale_contract/sdk"
)

// emitInitEvent writes a tiny "in" line so watchers know the contract woke up.
func emitInitEvent(holder string) {
	sdk.Log(fmt.Sprintf("in|by:%s", holder))
}

// emitAdminTransferEvent traces capability handovers for auditors.
func emitAdminTransferEvent(from string, to string) {
	sdk.Log(fmt.Sprintf("at|from:%s|to:%s", from, to))
}

// emitSaleCreatedEvent gives explorers a neat ping without scanning full storage diffs.
func emitSaleCreatedEvent(saleID uint64, createdBy string, tokens Amount, target Amount) {
	sdk.Log(fmt.Sprintf("sc|id:%d|by:%s|t:%d|r:%d", saleID, createdBy, tokens, target))
}

// emitDepositEvent includes the incremental entitlement so allocations can be replayed from logs only.
func emitDepositEvent(saleID uint64, by string, amount Amount, entitled Amount, raisedTotal Amount) {
	sdk.Log(fmt.Sprintf("dp|id:%d|by:%s|am:%d|ent:%d|tot:%d", saleID, by, amount, entitled, raisedTotal))
}

// emitRedeemEvent marks a claim consumed and the tokens paid out.
func emitRedeemEvent(saleID uint64, by string, tokens Amount) {
	sdk.Log(fmt.Sprintf("rc|id:%d|by:%s|t:%d", saleID, by, tokens))
}

// emitSweepEvent records both withdrawn balances in one terse line.
func emitSweepEvent(saleID uint64, by string, saleTokens Amount, payment Amount) {
	sdk.Log(fmt.Sprintf("sw|id:%d|by:%s|t:%d|p:%d", saleID, by, saleTokens, payment))
}

// emitPhaseChangedEvent is the swiss army knife log entry for any phase flip.
func emitPhaseChangedEvent(saleID uint64, phase SalePhase) {
	sdk.Log(fmt.Sprintf("ph|id:%d|s:%s", saleID, phase.String()))
}

// emitWhitelistToggledEvent logs enable/disable of the gate.
func emitWhitelistToggledEvent(saleID uint64, enabled bool) {
	sdk.Log(fmt.Sprintf("wt|id:%d|on:%t", saleID, enabled))
}

// emitWhitelistAddedEvent reports how many fresh approvals landed.
func emitWhitelistAddedEvent(saleID uint64, added int) {
	sdk.Log(fmt.Sprintf("wa|id:%d|n:%d", saleID, added))
}

// emitMaxSpendChangedEvent spells out the new limit so auditors can track flips.
func emitMaxSpendChangedEvent(saleID uint64, limit Amount) {
	sdk.Log(fmt.Sprintf("ms|id:%d|max:%d", saleID, limit))
}
