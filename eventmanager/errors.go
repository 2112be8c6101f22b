package eventmanager

type InvalidArgumentError struct{}

func (e InvalidArgumentError) Error() string {
	return "a handler must be provided"
}
