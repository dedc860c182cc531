package statefile

import "github.com/luoyen/weibot/internal/domain"

// fileSchema matches the on-disk layout:
// {"nickname": ..., "uid": ..., "mids": [...], "max_id": ...}
type fileSchema struct {
	Nickname string  `json:"nickname"`
	UID      string  `json:"uid"`
	Mids     []int64 `json:"mids"`
	MaxID    int64   `json:"max_id"`
}

func toSchema(state domain.AccountState) fileSchema {
	return fileSchema{
		Nickname: state.Nickname,
		UID:      string(state.AccountID),
		Mids:     state.Processed,
		MaxID:    state.MaxID,
	}
}

func fromSchema(id domain.AccountID, file fileSchema) domain.AccountState {
	return domain.AccountState{
		AccountID: id,
		Nickname:  file.Nickname,
		Processed: file.Mids,
		MaxID:     file.MaxID,
	}
}
