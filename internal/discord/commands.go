package discord

import "github.com/bwmarrin/discordgo"

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// commandDefinitions is the full slash-command surface published on every
// start. Bulk overwrite keeps Discord's registry in sync with this list.
func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Verifica se o assistente está no ar.",
		},
		{
			Name:        "cadastrar-coordenador",
			Description: "Cadastra um coordenador de projeto de extensão.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("registration", "Prontuário (duas letras, seis dígitos e um caractere final).", true),
				stringOption("discord_id", "ID numérico do Discord do coordenador.", true),
				stringOption("name", "Nome completo.", true),
				stringOption("email", "E-mail institucional.", true),
			},
		},
		{
			Name:        "cadastrar-membro",
			Description: "Cadastra um membro bolsista ou voluntário.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("registration", "Prontuário (duas letras, seis dígitos e um caractere final).", true),
				stringOption("discord_id", "ID numérico do Discord do membro.", true),
				stringOption("name", "Nome completo.", true),
				stringOption("email", "E-mail institucional.", true),
			},
		},
		{
			Name:        "cadastrar-projeto",
			Description: "Cadastra um projeto de extensão e o vincula a um servidor.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("coordinator_id", "Identificador do coordenador responsável.", true),
				stringOption("discord_server_id", "ID do servidor do Discord do projeto.", true),
				stringOption("title", "Título do projeto.", true),
				stringOption("start_date", "Data de início (DD/MM/AAAA).", true),
				stringOption("end_date", "Data de término (DD/MM/AAAA).", true),
			},
		},
		{
			Name:        "adicionar-participacao",
			Description: "Vincula um membro a um projeto.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("registration", "Prontuário do membro.", true),
				stringOption("project_title", "Título do projeto.", true),
				stringOption("date", "Data de ingresso (DD/MM/AAAA).", true),
			},
		},
		{
			Name:        "cadastrar-presenca",
			Description: "Registra a presença do dia no projeto deste servidor.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("entry_time", "Horário de entrada (HH:MM).", true),
				stringOption("exit_time", "Horário de saída (HH:MM).", true),
				stringOption("day", "Dia do mês corrente; vazio usa o dia de hoje.", false),
			},
		},
		{
			Name:        "relatorio-mensal",
			Description: "Gera o relatório mensal de atividades em PDF.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("planned", "Atividades planejadas (200 a 500 caracteres).", true),
				stringOption("performed", "Atividades realizadas (200 a 500 caracteres).", true),
				stringOption("results", "Resultados obtidos (200 a 500 caracteres).", true),
			},
		},
		{
			Name:        "relatorio-semestral",
			Description: "Gera o relatório semestral de atividades em PDF.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("planned", "Atividades planejadas (300 a 600 caracteres).", true),
				stringOption("performed", "Atividades realizadas (300 a 600 caracteres).", true),
				stringOption("results", "Resultados obtidos (300 a 600 caracteres).", true),
			},
		},
		{
			Name:        "termo-encerramento",
			Description: "Gera o termo de encerramento de participação em PDF.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("termination_date", "Data de encerramento (DD/MM/AAAA).", true),
				stringOption("reason", "Motivo do encerramento (60 a 250 caracteres).", true),
			},
		},
		{
			Name:        "log",
			Description: "Exporta o log de atividades do projeto em PDF.",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("start_date", "Data inicial (DD/MM/AAAA).", false),
				stringOption("end_date", "Data final (DD/MM/AAAA).", false),
				stringOption("student_id", "Prontuário para filtrar por membro.", false),
			},
		},
	}
}
