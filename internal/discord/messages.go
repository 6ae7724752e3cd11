package discord

import (
	"errors"

	"github.com/example/extension-assistant/internal/application"
)

// Success replies. Command names and replies are user-visible contract;
// they must not drift.
const (
	msgPong                 = "Pong!"
	msgCoordinatorCreated   = "Coordenador cadastrado com sucesso!"
	msgMemberCreated        = "Membro cadastrado com sucesso!"
	msgProjectCreated       = "Projeto cadastrado com sucesso!"
	msgParticipationCreated = "Participação adicionada com sucesso!"
	msgAttendanceCreated    = "Presença cadastrada com sucesso!"
	msgInternalError        = "Ocorreu um erro interno. Tente novamente mais tarde."
)

// kindMessages is the single lookup table translating domain failure kinds
// into user-facing Portuguese strings. Handlers never format errors they
// did not raise; they go through this table.
var kindMessages = map[application.Kind]string{
	application.KindRegistrationError:   "Prontuário inválido. Use duas letras, seis dígitos e um caractere final.",
	application.KindEmailError:          "E-mail inválido.",
	application.KindDiscordIDError:      "ID do Discord inválido: use apenas dígitos.",
	application.KindSlashMissing:        "Data inválida: use o formato DD/MM/AAAA.",
	application.KindNonNumericDateField: "Data inválida: dia, mês e ano devem ser numéricos.",
	application.KindMonthOutOfRange:     "Data inválida: o mês deve estar entre 1 e 12.",
	application.KindDayInvalidForMonth:  "Data inválida: dia inexistente para o mês informado.",
	application.KindYearNonPositive:     "Data inválida: o ano deve ser positivo.",
	application.KindInvalidDate:         "Data inválida.",
	application.KindInvalidTime:         "Horário inválido: use o formato HH:MM.",
	application.KindInvalidTextLength:   "Texto fora dos limites de tamanho exigidos.",

	application.KindDayOutOfRange:             "Dia fora do período permitido para registro de presença.",
	application.KindTimeOutOfRange:            "Horário fora do expediente permitido.",
	application.KindEntryTimeAfterExitTime:    "O horário de entrada deve ser anterior ao horário de saída.",
	application.KindDateOutOfRange:            "Data fora do período do projeto.",
	application.KindOutOfRangeTerminationDate: "Data de encerramento fora do período permitido.",
	application.KindInvalidRequestPeriod:      "O relatório só pode ser solicitado a partir do dia 23 do mês.",
	application.KindMissingStartDate:          "Informe a data inicial do período.",

	application.KindMemberNotFound:                "Membro não encontrado.",
	application.KindProjectNotFound:               "Projeto não encontrado.",
	application.KindCoordinatorNotFound:           "Coordenador não encontrado.",
	application.KindParticipationNotFound:         "Participação não encontrada.",
	application.KindParticipationNotFoundInServer: "Você não possui participação ativa neste servidor.",
	application.KindParticipationClosed:           "Sua participação neste projeto já foi encerrada.",
	application.KindServerNotFound:                "Este servidor não está vinculado a nenhum projeto.",

	application.KindCoordinatorAlreadyExists:   "Já existe um coordenador com esses dados.",
	application.KindMemberAlreadyExists:        "Já existe um membro com esses dados.",
	application.KindProjectAlreadyExists:       "Já existe um projeto com esse servidor ou título.",
	application.KindParticipationAlreadyExists: "Este membro já participa do projeto.",

	application.KindNotAuthorized: "Você não tem permissão para executar este comando.",
}

// userMessage resolves the Portuguese reply for a failure. Failures
// without a tagged kind are internal and surface generically.
func userMessage(err error) string {
	var domainErr *application.Error
	if errors.As(err, &domainErr) {
		if msg, ok := kindMessages[domainErr.Kind]; ok {
			return msg
		}
	}
	return msgInternalError
}
