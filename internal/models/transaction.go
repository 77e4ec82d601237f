package models

// UserTransaction is the payload the Confluent HTTP sink pushes for each
// record of the user_trans_hst_avro topic. Every field is optional on the
// wire; absent fields stay absent (nil), they are never defaulted.
type UserTransaction struct {
	AuthorizerUsrNbr *int64  `json:"authorizer_usrnbr,omitempty"`
	CreatUsrNbr      *int64  `json:"creat_usrnbr,omitempty"`
	CreatTime        *string `json:"creat_time,omitempty"`
	Data             *string `json:"data,omitempty"`
	Usrname          *string `json:"usrname,omitempty"`
}

// User returns the username or "" when the sink did not send one.
func (t UserTransaction) User() string {
	if t.Usrname == nil {
		return ""
	}
	return *t.Usrname
}

// Transaction is a stored record: the sink payload plus the fields the
// server assigns at append time. SequenceID restarts at 1 with the process;
// BatchID is set only on the batch ingestion path.
type Transaction struct {
	UserTransaction
	ReceivedAt string `json:"received_at"`
	SequenceID int64  `json:"sequence_id"`
	BatchID    string `json:"batch_id,omitempty"`
}
