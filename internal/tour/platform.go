package tour

func demoPlatform(e env) error {
	return areWeOnLinux(e.w)
}
