package warehouse

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arqpeople/fopag-flow/internal/model"
)

var consolStagingColumns = []string{
	"competencia", "tipo_calculo", "departamento", "vinculo",
	"nome_funcionario", "situacao", "data_demissao", "motivo_demissao",
	"cargo", "data_admissao", "cpf", "salario_contratual",
	"total_proventos", "total_descontos", "valor_liquido",
	"base_inss", "base_fgts", "valor_fgts", "base_irrf",
}

var detailStagingColumns = []string{
	"competencia", "tipo_calculo", "departamento", "vinculo",
	"nome_funcionario", "cpf", "situacao",
	"codigo_rubrica", "nome_rubrica", "tipo_rubrica", "valor_rubrica",
}

// LoadPayroll stages the extracted records and merges them into the fact
// tables. Each competency present in the batch is replaced wholesale:
// existing fact rows for it are deleted before the re-insert, which is what
// makes re-running a month's extraction idempotent. The staging tables are
// left in place for the transfer post-processing step.
func (s *Store) LoadPayroll(ctx context.Context, summaries []model.PayrollSummary, details []model.RubricaLine) error {
	if len(summaries) == 0 {
		s.logger.Info("no payroll records to load")
		return nil
	}

	if err := s.stageSummaries(ctx, summaries); err != nil {
		return err
	}
	if err := s.mergeBaseDimension(ctx); err != nil {
		return err
	}
	if err := s.mergeConsolidated(ctx, summaryCompetencies(summaries)); err != nil {
		return err
	}

	if len(details) > 0 {
		if err := s.stageDetails(ctx, details); err != nil {
			return err
		}
		if err := s.mergeDetailed(ctx, detailCompetencies(details)); err != nil {
			return err
		}
	}

	s.logger.Info("payroll facts loaded",
		"summaries", len(summaries),
		"details", len(details))
	return nil
}

func (s *Store) stageSummaries(ctx context.Context, summaries []model.PayrollSummary) error {
	ddl := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]s;
		CREATE TABLE %[1]s (
			competencia DATE, tipo_calculo TEXT, departamento TEXT, vinculo TEXT,
			nome_funcionario TEXT, situacao TEXT, data_demissao DATE, motivo_demissao TEXT,
			cargo TEXT, data_admissao DATE, cpf TEXT, salario_contratual TEXT,
			total_proventos TEXT, total_descontos TEXT, valor_liquido TEXT,
			base_inss TEXT, base_fgts TEXT, valor_fgts TEXT, base_irrf TEXT
		)`, s.qualify("stg_folha_consol"))
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating summary staging table: %w", err)
	}

	rows := make([][]any, 0, len(summaries))
	for i := range summaries {
		sum := &summaries[i]
		var bond any
		if sum.BondType != nil {
			bond = string(*sum.BondType)
		}
		rows = append(rows, []any{
			nullableTime(sum.Competency),
			nullableStr(sum.CalculationType),
			nullableStr(sum.Department),
			bond,
			nullableStr(sum.EmployeeName),
			nullableStr(sum.Status),
			nullableTime(sum.TerminationDate),
			nullableStr(sum.TerminationReason),
			nullableStr(sum.JobTitle),
			nullableTime(sum.AdmissionDate),
			nullableStr(sum.TaxID),
			nullableDec(sum.ContractualSalary),
			nullableDec(sum.GrossEarnings),
			nullableDec(sum.GrossDeductions),
			nullableDec(sum.NetPay),
			nullableDec(sum.SocialSecurityBase),
			nullableDec(sum.SeveranceBase),
			nullableDec(sum.SeveranceAmount),
			nullableDec(sum.IncomeTaxBase),
		})
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{s.schema, "stg_folha_consol"},
		consolStagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("staging payroll summaries: %w", err)
	}
	return nil
}

func (s *Store) stageDetails(ctx context.Context, details []model.RubricaLine) error {
	ddl := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]s;
		CREATE TABLE %[1]s (
			competencia DATE, tipo_calculo TEXT, departamento TEXT, vinculo TEXT,
			nome_funcionario TEXT, cpf TEXT, situacao TEXT,
			codigo_rubrica TEXT, nome_rubrica TEXT, tipo_rubrica TEXT, valor_rubrica TEXT
		)`, s.qualify("stg_folha_detalhe"))
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating detail staging table: %w", err)
	}

	rows := make([][]any, 0, len(details))
	for i := range details {
		det := &details[i]
		var bond, category any
		if det.BondType != nil {
			bond = string(*det.BondType)
		}
		if det.Category != nil {
			category = string(*det.Category)
		}
		rows = append(rows, []any{
			nullableTime(det.Competency),
			nullableStr(det.CalculationType),
			nullableStr(det.Department),
			bond,
			nullableStr(det.EmployeeName),
			nullableStr(det.TaxID),
			nullableStr(det.Status),
			nullableStr(det.Code),
			nullableStr(det.Name),
			category,
			det.Amount.String(),
		})
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{s.schema, "stg_folha_detalhe"},
		detailStagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("staging payroll details: %w", err)
	}
	return nil
}

// mergeBaseDimension upserts the people dimension from the staged summaries.
// Existing attributes are only overwritten by non-null staged values, so a
// payslip that lacks a field cannot erase what a previous load knew.
func (s *Store) mergeBaseDimension(ctx context.Context) error {
	sql := fmt.Sprintf(`
		INSERT INTO %[1]s (
			nome_colaborador, cpf,
			data_admissao_csv, data_demissao_csv, situacao_csv,
			departamento_csv, cargo_csv
		)
		SELECT DISTINCT ON (cpf)
			nome_funcionario, cpf,
			data_admissao, data_demissao, situacao,
			departamento, cargo
		FROM %[2]s
		WHERE cpf IS NOT NULL AND cpf != 'N/A'
		ORDER BY cpf, nome_funcionario DESC
		ON CONFLICT (cpf) DO UPDATE SET
			nome_colaborador = EXCLUDED.nome_colaborador,
			data_admissao_csv = COALESCE(EXCLUDED.data_admissao_csv, %[1]s.data_admissao_csv),
			data_demissao_csv = COALESCE(EXCLUDED.data_demissao_csv, %[1]s.data_demissao_csv),
			situacao_csv = COALESCE(EXCLUDED.situacao_csv, %[1]s.situacao_csv),
			departamento_csv = COALESCE(EXCLUDED.departamento_csv, %[1]s.departamento_csv),
			cargo_csv = COALESCE(EXCLUDED.cargo_csv, %[1]s.cargo_csv)`,
		s.qualify("dim_colaboradores_base"), s.qualify("stg_folha_consol"))

	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("merging base dimension: %w", err)
	}
	return nil
}

func (s *Store) mergeConsolidated(ctx context.Context, competencies []time.Time) error {
	if len(competencies) == 0 {
		return nil
	}

	del := fmt.Sprintf(`DELETE FROM %s WHERE competencia = ANY($1)`,
		s.qualify("fato_folha_consolidada"))
	if _, err := s.db.Exec(ctx, del, competencies); err != nil {
		return fmt.Errorf("clearing consolidated facts: %w", err)
	}

	ins := fmt.Sprintf(`
		INSERT INTO %[1]s (
			colaborador_sk, competencia, nome_funcionario_csv, centro_de_custo,
			cargo_nome_csv, cpf_csv, situacao_csv, tipo_calculo_csv,
			salario_contratual, total_proventos, total_descontos, valor_liquido,
			base_inss, base_fgts, valor_fgts, base_irrf
		)
		SELECT
			COALESCE(base.colaborador_sk, 0),
			stg.competencia,
			stg.nome_funcionario, stg.departamento,
			stg.cargo, stg.cpf, stg.situacao, stg.tipo_calculo,
			CAST(NULLIF(stg.salario_contratual, '') AS NUMERIC),
			CAST(NULLIF(stg.total_proventos, '') AS NUMERIC),
			CAST(NULLIF(stg.total_descontos, '') AS NUMERIC),
			CAST(NULLIF(stg.valor_liquido, '') AS NUMERIC),
			CAST(NULLIF(stg.base_inss, '') AS NUMERIC),
			CAST(NULLIF(stg.base_fgts, '') AS NUMERIC),
			CAST(NULLIF(stg.valor_fgts, '') AS NUMERIC),
			CAST(NULLIF(stg.base_irrf, '') AS NUMERIC)
		FROM %[2]s stg
		LEFT JOIN %[3]s base ON stg.cpf = base.cpf`,
		s.qualify("fato_folha_consolidada"),
		s.qualify("stg_folha_consol"),
		s.qualify("dim_colaboradores_base"))

	if _, err := s.db.Exec(ctx, ins); err != nil {
		return fmt.Errorf("inserting consolidated facts: %w", err)
	}
	return nil
}

func (s *Store) mergeDetailed(ctx context.Context, competencies []time.Time) error {
	if len(competencies) == 0 {
		return nil
	}

	del := fmt.Sprintf(`DELETE FROM %s WHERE competencia = ANY($1)`,
		s.qualify("fato_folha_detalhada"))
	if _, err := s.db.Exec(ctx, del, competencies); err != nil {
		return fmt.Errorf("clearing detailed facts: %w", err)
	}

	ins := fmt.Sprintf(`
		INSERT INTO %[1]s (
			colaborador_sk, competencia, nome_funcionario_csv, centro_de_custo, cpf_csv,
			situacao_csv, tipo_calculo_csv, codigo_rubrica, nome_rubrica, tipo_rubrica,
			valor_rubrica
		)
		SELECT
			COALESCE(base.colaborador_sk, 0),
			stg.competencia,
			stg.nome_funcionario, stg.departamento, stg.cpf,
			stg.situacao, stg.tipo_calculo, stg.codigo_rubrica, stg.nome_rubrica,
			stg.tipo_rubrica,
			CAST(NULLIF(stg.valor_rubrica, '') AS NUMERIC)
		FROM %[2]s stg
		LEFT JOIN %[3]s base ON stg.cpf = base.cpf`,
		s.qualify("fato_folha_detalhada"),
		s.qualify("stg_folha_detalhe"),
		s.qualify("dim_colaboradores_base"))

	if _, err := s.db.Exec(ctx, ins); err != nil {
		return fmt.Errorf("inserting detailed facts: %w", err)
	}
	return nil
}

func summaryCompetencies(summaries []model.PayrollSummary) []time.Time {
	seen := make(map[time.Time]bool)
	var competencies []time.Time
	for i := range summaries {
		if c := summaries[i].Competency; c != nil && !seen[*c] {
			seen[*c] = true
			competencies = append(competencies, *c)
		}
	}
	return competencies
}

func detailCompetencies(details []model.RubricaLine) []time.Time {
	seen := make(map[time.Time]bool)
	var competencies []time.Time
	for i := range details {
		if c := details[i].Competency; c != nil && !seen[*c] {
			seen[*c] = true
			competencies = append(competencies, *c)
		}
	}
	return competencies
}
