package cli

var (
	ServeUseCaseForTest    = serveUseCase
	TerminalUseCaseForTest = terminalUseCase
)
