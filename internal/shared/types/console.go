package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayAssignmentSummary(summary AssignmentSummary)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// AssignmentSummary carrega os números exibidos no painel final de uma execução.
type AssignmentSummary struct {
	Title        string `json:"title"`
	Assigned     int    `json:"assigned"`
	Failed       int    `json:"failed"`
	Synced       int    `json:"synced"`
	SyncFailed   int    `json:"sync_failed"`
	Sites        int    `json:"sites"`
	DeviceGroups int    `json:"device_groups"`
	DryRun       bool   `json:"dry_run"`
}
