package metrics

const namespace = "atnt"

const (
	resultLabelKey = "result"

	resultSuccess = "success"
	resultFailure = "failure"
)

func result(success bool) string {
	if success {
		return resultSuccess
	}
	return resultFailure
}
