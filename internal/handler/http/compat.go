package http

// acceptMessagesRequest is the toggle body. Older clients send one of the
// legacy names instead of accepting_messages.
type acceptMessagesRequest struct {
	AcceptingMessages   *bool `json:"accepting_messages"`
	AcceptMessages      *bool `json:"acceptMessages"`
	IsAcceptingMessages *bool `json:"isAcceptingMessages"`
}

// resolve returns the requested flag. accepting_messages wins over the
// legacy names.
func (r acceptMessagesRequest) resolve() (bool, error) {
	for _, v := range []*bool{r.AcceptingMessages, r.AcceptMessages, r.IsAcceptingMessages} {
		if v != nil {
			return *v, nil
		}
	}
	return false, ErrMissingAcceptingFlag
}
