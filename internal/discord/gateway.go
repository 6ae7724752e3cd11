package discord

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/example/extension-assistant/internal/clock"
	"github.com/example/extension-assistant/internal/logengine"
	"github.com/example/extension-assistant/internal/report"
)

// Gateway owns the Discord session: it registers the slash commands,
// dispatches interactions to the handlers, feeds the raw event stream to
// the log engine, and delivers month-end sheets by direct message.
type Gateway struct {
	session  *discordgo.Session
	handlers *Handlers
	engine   *logengine.Engine
	renderer Renderer
	clk      clock.Clock
	logger   *slog.Logger

	commandTimeout  time.Duration
	documentTimeout time.Duration
}

// GatewayConfig wires the gateway dependencies.
type GatewayConfig struct {
	Token           string
	Handlers        *Handlers
	Engine          *logengine.Engine
	Renderer        Renderer
	Clock           clock.Clock
	Logger          *slog.Logger
	CommandTimeout  time.Duration
	DocumentTimeout time.Duration
}

// NewGateway builds the session and binds the event handlers. The session
// is not opened until Run is called.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	g := &Gateway{
		session:         session,
		handlers:        cfg.Handlers,
		engine:          cfg.Engine,
		renderer:        cfg.Renderer,
		clk:             cfg.Clock,
		logger:          logger,
		commandTimeout:  cfg.CommandTimeout,
		documentTimeout: cfg.DocumentTimeout,
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	session.AddHandler(g.onInteraction)
	session.AddHandler(g.onMessageCreate)
	session.AddHandler(g.onMessageUpdate)
	session.AddHandler(g.onMessageDelete)
	session.AddHandler(g.onReactionAdd)

	return g, nil
}

// Run opens the session, publishes the command set, and blocks until the
// context is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer g.session.Close()

	if _, err := g.session.ApplicationCommandBulkOverwrite(g.session.State.User.ID, "", commandDefinitions()); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	g.logger.InfoContext(ctx, "discord gateway connected", "user", g.session.State.User.Username)

	<-ctx.Done()
	return ctx.Err()
}

// DeliverSheet renders an attendance sheet and sends it to the member by
// direct message. It implements application.SheetDeliverer.
func (g *Gateway) DeliverSheet(ctx context.Context, memberDiscordID string, doc report.Document) error {
	content, err := g.renderer.Render(doc)
	if err != nil {
		return err
	}
	channel, err := g.session.UserChannelCreate(memberDiscordID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}
	if _, err := g.session.ChannelFileSend(channel.ID, doc.Filename, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("send sheet: %w", err)
	}
	return nil
}

func (g *Gateway) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	inv := invocationOf(i)
	options := optionMap(data.Options)

	g.recordEvent(logengine.Event{
		Kind:        logengine.EventInteraction,
		GuildID:     i.GuildID,
		ActorID:     inv.InvokerID,
		CommandName: data.Name,
		Timestamp:   g.clk.Now(),
	})

	switch data.Name {
	case "ping":
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.Ping(ctx, inv)
		})
	case "cadastrar-coordenador":
		form := PersonForm{
			Registration: options["registration"],
			DiscordID:    options["discord_id"],
			Name:         options["name"],
			Email:        options["email"],
		}
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.CadastrarCoordenador(ctx, inv, form)
		})
	case "cadastrar-membro":
		form := PersonForm{
			Registration: options["registration"],
			DiscordID:    options["discord_id"],
			Name:         options["name"],
			Email:        options["email"],
		}
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.CadastrarMembro(ctx, inv, form)
		})
	case "cadastrar-projeto":
		form := ProjectForm{
			CoordinatorID: options["coordinator_id"],
			GuildID:       options["discord_server_id"],
			Title:         options["title"],
			StartDate:     options["start_date"],
			EndDate:       options["end_date"],
		}
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.CadastrarProjeto(ctx, inv, form)
		})
	case "adicionar-participacao":
		form := ParticipationForm{
			Registration: options["registration"],
			ProjectTitle: options["project_title"],
			Date:         options["date"],
		}
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.AdicionarParticipacao(ctx, inv, form)
		})
	case "cadastrar-presenca":
		form := AttendanceForm{
			Day:       options["day"],
			EntryTime: options["entry_time"],
			ExitTime:  options["exit_time"],
		}
		g.respondText(i, func(ctx context.Context) Reply {
			return g.handlers.CadastrarPresenca(ctx, inv, form)
		})
	case "relatorio-mensal":
		form := NarrativeForm{
			Planned:   options["planned"],
			Performed: options["performed"],
			Results:   options["results"],
		}
		g.respondDocument(i, func(ctx context.Context) Reply {
			return g.handlers.RelatorioMensal(ctx, inv, form)
		})
	case "relatorio-semestral":
		form := NarrativeForm{
			Planned:   options["planned"],
			Performed: options["performed"],
			Results:   options["results"],
		}
		g.respondDocument(i, func(ctx context.Context) Reply {
			return g.handlers.RelatorioSemestral(ctx, inv, form)
		})
	case "termo-encerramento":
		form := TerminationForm{
			TerminationDate: options["termination_date"],
			Reason:          options["reason"],
		}
		g.respondDocument(i, func(ctx context.Context) Reply {
			return g.handlers.TermoEncerramento(ctx, inv, form)
		})
	case "log":
		form := LogForm{
			StartDate: options["start_date"],
			EndDate:   options["end_date"],
			StudentID: options["student_id"],
		}
		g.respondDocument(i, func(ctx context.Context) Reply {
			return g.handlers.Log(ctx, inv, form)
		})
	}
}

// respondText runs a reply-only command under the interactive timeout.
func (g *Gateway) respondText(i *discordgo.InteractionCreate, run func(ctx context.Context) Reply) {
	ctx, cancel := context.WithTimeout(context.Background(), g.commandTimeout)
	defer cancel()

	reply := run(ctx)
	err := g.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: reply.Text},
	})
	if err != nil {
		g.logger.Error("interaction respond failed", "error", err)
	}
}

// respondDocument defers the acknowledgement, runs the command under the
// document timeout, and follows up with the PDF or the failure text.
func (g *Gateway) respondDocument(i *discordgo.InteractionCreate, run func(ctx context.Context) Reply) {
	ack := g.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if ack != nil {
		g.logger.Error("interaction ack failed", "error", ack)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.documentTimeout)
	defer cancel()

	reply := run(ctx)
	params := &discordgo.WebhookParams{Content: reply.Text}
	if reply.File != nil {
		params.Files = []*discordgo.File{{
			Name:        reply.File.Name,
			ContentType: "application/pdf",
			Reader:      bytes.NewReader(reply.File.Content),
		}}
	}
	if _, err := g.session.FollowupMessageCreate(i.Interaction, true, params); err != nil {
		g.logger.Error("interaction follow-up failed", "error", err)
	}
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil {
		return
	}
	g.recordEvent(logengine.Event{
		Kind:           logengine.EventMessage,
		GuildID:        m.GuildID,
		ActorID:        m.Author.ID,
		ActorIsBot:     m.Author.Bot,
		Content:        m.Content,
		AttachmentURLs: attachmentURLs(m.Attachments),
		Timestamp:      m.Timestamp,
	})
}

func (g *Gateway) onMessageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	if m.Author == nil {
		return
	}
	g.recordEvent(logengine.Event{
		Kind:           logengine.EventMessageEdit,
		GuildID:        m.GuildID,
		ActorID:        m.Author.ID,
		ActorIsBot:     m.Author.Bot,
		Content:        m.Content,
		AttachmentURLs: attachmentURLs(m.Attachments),
		Timestamp:      g.clk.Now(),
	})
}

func (g *Gateway) onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	// Deletions only carry the author when the message was still cached.
	before := m.BeforeDelete
	if before == nil || before.Author == nil {
		return
	}
	g.recordEvent(logengine.Event{
		Kind:       logengine.EventMessageDelete,
		GuildID:    m.GuildID,
		ActorID:    before.Author.ID,
		ActorIsBot: before.Author.Bot,
		Timestamp:  g.clk.Now(),
	})
}

func (g *Gateway) onReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	g.recordEvent(logengine.Event{
		Kind:      logengine.EventReactionAdd,
		GuildID:   r.GuildID,
		ActorID:   r.UserID,
		Emoji:     r.Emoji.Name,
		Timestamp: g.clk.Now(),
	})
}

func (g *Gateway) recordEvent(event logengine.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), g.commandTimeout)
	defer cancel()
	if err := g.engine.Record(ctx, event); err != nil {
		g.logger.Error("activity log ingestion failed", "error", err)
	}
}

func invocationOf(i *discordgo.InteractionCreate) Invocation {
	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	inv := Invocation{GuildID: i.GuildID}
	if user != nil {
		inv.InvokerID = user.ID
		inv.InvokerName = user.Username
	}
	return inv
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, option := range options {
		if option.Type == discordgo.ApplicationCommandOptionString {
			values[option.Name] = option.StringValue()
		}
	}
	return values
}

func attachmentURLs(attachments []*discordgo.MessageAttachment) []string {
	urls := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		if attachment != nil && attachment.URL != "" {
			urls = append(urls, attachment.URL)
		}
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}
