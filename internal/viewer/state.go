package viewer

// State is the controller's position in the popup state machine.
type State string

const (
	StateIdle              State = "IDLE"
	StateSuggestionsLoaded State = "SUGGESTIONS_LOADED"
	StateConnectionError   State = "CONNECTION_ERROR"
	StateLoading           State = "LOADING"
	StateDisplaying        State = "DISPLAYING"
	StateErrorNoData       State = "ERROR_NO_DATA"
	StateErrorNotFound     State = "ERROR_NOT_FOUND"
	StateErrorNoBattery    State = "ERROR_NO_BATTERY"
	StateErrorDataFormat   State = "ERROR_DATA_FORMAT"
	StatePolling           State = "POLLING"
)

// preFetch reports whether the state precedes any user fetch, so a suggestion
// reload may still move the state machine.
func (s State) preFetch() bool {
	return s == StateIdle || s == StateSuggestionsLoaded || s == StateConnectionError
}
