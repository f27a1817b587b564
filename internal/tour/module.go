package tour

import "github.com/marcodamonte/constructs/internal/greet"

func demoModule(e env) error {
	greet.PublicFunction(e.w)
	return nil
}
