package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arqpeople/fopag-flow/internal/model"
)

var employeeStagingColumns = []string{
	"colaborador_id_solides", "cpf", "nome_completo", "data_nascimento", "genero",
	"data_admissao", "data_demissao", "motivo_demissao", "ativo",
	"departamento_id_solides", "departamento_nome_api",
	"cargo_id_solides", "cargo_nome_api",
	"matricula", "email", "telefone_pessoal", "celular", "estado_civil",
	"salario_api", "turno_trabalho", "tipo_contrato", "escolaridade",
	"nivel_hierarquico", "nome_lider_imediato", "unidade_nome", "etnia", "pcd",
	"logradouro", "numero_endereco", "complemento_endereco", "bairro",
	"cidade", "estado", "cep", "rg", "pis",
}

var benefitStagingColumns = []string{
	"colaborador_id_solides", "nome_beneficio", "tipo_beneficio",
	"valor_beneficio", "valor_desconto", "periodicidade",
	"opcao_desconto", "aplicado_como",
}

// LoadEmployees stages the HR master data and merges it. The base dimension
// gains any CPF it did not know yet; the rich dimension is upserted by HR
// system id; benefits are a full snapshot, truncated and reloaded. The
// employee staging table is kept for the transfer post-processing step.
func (s *Store) LoadEmployees(ctx context.Context, employees []model.Employee, benefits []model.Benefit) error {
	if len(employees) == 0 {
		s.logger.Info("no employee records to load")
		return nil
	}

	if err := s.stageEmployees(ctx, employees); err != nil {
		return err
	}
	if err := s.stageBenefits(ctx, benefits); err != nil {
		return err
	}

	base := fmt.Sprintf(`
		INSERT INTO %[1]s (nome_colaborador, cpf)
		SELECT DISTINCT ON (cpf) nome_completo, cpf
		FROM %[2]s
		WHERE cpf IS NOT NULL AND cpf != 'N/A'
		ORDER BY cpf, colaborador_id_solides DESC
		ON CONFLICT (cpf) DO UPDATE SET
			nome_colaborador = EXCLUDED.nome_colaborador`,
		s.qualify("dim_colaboradores_base"), s.qualify("staging_colaboradores"))
	if _, err := s.db.Exec(ctx, base); err != nil {
		return fmt.Errorf("merging base dimension from hr data: %w", err)
	}

	if err := s.mergeRichDimension(ctx); err != nil {
		return err
	}
	if err := s.reloadBenefits(ctx); err != nil {
		return err
	}

	s.logger.Info("employee master data loaded",
		"employees", len(employees),
		"benefits", len(benefits))
	return nil
}

func (s *Store) stageEmployees(ctx context.Context, employees []model.Employee) error {
	ddl := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]s;
		CREATE TABLE %[1]s (
			colaborador_id_solides BIGINT, cpf TEXT, nome_completo TEXT,
			data_nascimento DATE, genero TEXT,
			data_admissao DATE, data_demissao DATE, motivo_demissao TEXT, ativo BOOLEAN,
			departamento_id_solides BIGINT, departamento_nome_api TEXT,
			cargo_id_solides BIGINT, cargo_nome_api TEXT,
			matricula TEXT, email TEXT, telefone_pessoal TEXT, celular TEXT,
			estado_civil TEXT, salario_api TEXT, turno_trabalho TEXT,
			tipo_contrato TEXT, escolaridade TEXT, nivel_hierarquico TEXT,
			nome_lider_imediato TEXT, unidade_nome TEXT, etnia TEXT, pcd BOOLEAN,
			logradouro TEXT, numero_endereco TEXT, complemento_endereco TEXT,
			bairro TEXT, cidade TEXT, estado TEXT, cep TEXT, rg TEXT, pis TEXT
		)`, s.qualify("staging_colaboradores"))
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating employee staging table: %w", err)
	}

	rows := make([][]any, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		rows = append(rows, []any{
			e.SolidesID,
			nullableStr(e.CPF),
			nullableStr(e.FullName),
			nullableTime(e.BirthDate),
			nullableStr(e.Gender),
			nullableTime(e.AdmissionDate),
			nullableTime(e.DismissalDate),
			nullableStr(e.DismissalReason),
			nullableBool(e.Active),
			nullableInt(e.DepartmentID),
			nullableStr(e.DepartmentName),
			nullableInt(e.PositionID),
			nullableStr(e.PositionName),
			nullableStr(e.Registration),
			nullableStr(e.Email),
			nullableStr(e.PersonalPhone),
			nullableStr(e.CellPhone),
			nullableStr(e.MaritalStatus),
			nullableDec(e.Salary),
			nullableStr(e.WorkShift),
			nullableStr(e.ContractType),
			nullableStr(e.EducationLevel),
			nullableStr(e.HierarchicalLevel),
			nullableStr(e.ManagerName),
			nullableStr(e.UnitName),
			nullableStr(e.Ethnicity),
			nullableBool(e.Disabled),
			nullableStr(e.Street),
			nullableStr(e.Number),
			nullableStr(e.Complement),
			nullableStr(e.Neighborhood),
			nullableStr(e.City),
			nullableStr(e.State),
			nullableStr(e.ZipCode),
			nullableStr(e.RG),
			nullableStr(e.PIS),
		})
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{s.schema, "staging_colaboradores"},
		employeeStagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("staging employees: %w", err)
	}
	return nil
}

func (s *Store) stageBenefits(ctx context.Context, benefits []model.Benefit) error {
	ddl := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]s;
		CREATE TABLE %[1]s (
			colaborador_id_solides BIGINT, nome_beneficio TEXT, tipo_beneficio TEXT,
			valor_beneficio TEXT, valor_desconto TEXT, periodicidade TEXT,
			opcao_desconto TEXT, aplicado_como TEXT
		)`, s.qualify("staging_beneficios_api"))
	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating benefit staging table: %w", err)
	}

	if len(benefits) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(benefits))
	for i := range benefits {
		b := &benefits[i]
		rows = append(rows, []any{
			b.SolidesID,
			nullableStr(b.Name),
			nullableStr(b.Type),
			nullableDec(b.Value),
			nullableDec(b.Discount),
			nullableStr(b.Periodicity),
			nullableStr(b.DiscountOption),
			nullableStr(b.AppliedAs),
		})
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{s.schema, "staging_beneficios_api"},
		benefitStagingColumns,
		pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("staging benefits: %w", err)
	}
	return nil
}

// mergeRichDimension upserts dim_colaboradores by HR id. Only records whose
// CPF resolved against the base dimension participate; the join is what
// supplies the surrogate key.
func (s *Store) mergeRichDimension(ctx context.Context) error {
	sql := fmt.Sprintf(`
		INSERT INTO %[1]s (
			colaborador_sk, colaborador_id_solides, cpf, nome_completo,
			data_nascimento, genero, data_admissao, data_demissao, motivo_demissao,
			ativo, departamento_id_solides, departamento_nome_api,
			cargo_id_solides, cargo_nome_api, matricula, email, telefone_pessoal,
			celular, estado_civil, salario_api, turno_trabalho, tipo_contrato,
			escolaridade, nivel_hierarquico, nome_lider_imediato, unidade_nome,
			etnia, pcd, logradouro, numero_endereco, complemento_endereco,
			bairro, cidade, estado, cep, rg, pis, data_ultima_atualizacao
		)
		SELECT
			base.colaborador_sk, stg.colaborador_id_solides, stg.cpf, stg.nome_completo,
			stg.data_nascimento, stg.genero, stg.data_admissao, stg.data_demissao,
			stg.motivo_demissao, stg.ativo, stg.departamento_id_solides,
			stg.departamento_nome_api, stg.cargo_id_solides, stg.cargo_nome_api,
			stg.matricula, stg.email, stg.telefone_pessoal, stg.celular,
			stg.estado_civil, CAST(NULLIF(stg.salario_api, '') AS NUMERIC),
			stg.turno_trabalho, stg.tipo_contrato, stg.escolaridade,
			stg.nivel_hierarquico, stg.nome_lider_imediato, stg.unidade_nome,
			stg.etnia, stg.pcd, stg.logradouro, stg.numero_endereco,
			stg.complemento_endereco, stg.bairro, stg.cidade, stg.estado,
			stg.cep, stg.rg, stg.pis, current_timestamp
		FROM %[2]s stg
		JOIN %[3]s base ON stg.cpf = base.cpf
		ON CONFLICT (colaborador_id_solides) DO UPDATE SET
			cpf = EXCLUDED.cpf,
			nome_completo = EXCLUDED.nome_completo,
			data_nascimento = EXCLUDED.data_nascimento,
			genero = EXCLUDED.genero,
			data_admissao = EXCLUDED.data_admissao,
			data_demissao = EXCLUDED.data_demissao,
			motivo_demissao = EXCLUDED.motivo_demissao,
			ativo = EXCLUDED.ativo,
			departamento_id_solides = EXCLUDED.departamento_id_solides,
			departamento_nome_api = EXCLUDED.departamento_nome_api,
			cargo_id_solides = EXCLUDED.cargo_id_solides,
			cargo_nome_api = EXCLUDED.cargo_nome_api,
			matricula = EXCLUDED.matricula,
			email = EXCLUDED.email,
			telefone_pessoal = EXCLUDED.telefone_pessoal,
			celular = EXCLUDED.celular,
			estado_civil = EXCLUDED.estado_civil,
			salario_api = EXCLUDED.salario_api,
			turno_trabalho = EXCLUDED.turno_trabalho,
			tipo_contrato = EXCLUDED.tipo_contrato,
			escolaridade = EXCLUDED.escolaridade,
			nivel_hierarquico = EXCLUDED.nivel_hierarquico,
			nome_lider_imediato = EXCLUDED.nome_lider_imediato,
			unidade_nome = EXCLUDED.unidade_nome,
			etnia = EXCLUDED.etnia,
			pcd = EXCLUDED.pcd,
			logradouro = EXCLUDED.logradouro,
			numero_endereco = EXCLUDED.numero_endereco,
			complemento_endereco = EXCLUDED.complemento_endereco,
			bairro = EXCLUDED.bairro,
			cidade = EXCLUDED.cidade,
			estado = EXCLUDED.estado,
			cep = EXCLUDED.cep,
			rg = EXCLUDED.rg,
			pis = EXCLUDED.pis,
			data_ultima_atualizacao = current_timestamp`,
		s.qualify("dim_colaboradores"),
		s.qualify("staging_colaboradores"),
		s.qualify("dim_colaboradores_base"))

	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("merging rich dimension: %w", err)
	}
	return nil
}

// reloadBenefits replaces the benefits snapshot.
func (s *Store) reloadBenefits(ctx context.Context) error {
	trunc := fmt.Sprintf(`TRUNCATE TABLE %s`, s.qualify("fato_beneficios_api"))
	if _, err := s.db.Exec(ctx, trunc); err != nil {
		return fmt.Errorf("truncating benefits: %w", err)
	}

	ins := fmt.Sprintf(`
		INSERT INTO %[1]s (
			colaborador_sk, tipo_beneficio, nome_beneficio,
			valor_beneficio, valor_desconto, periodicidade,
			opcao_desconto, aplicado_como
		)
		SELECT
			base.colaborador_sk, stg.tipo_beneficio, stg.nome_beneficio,
			CAST(NULLIF(stg.valor_beneficio, '') AS NUMERIC),
			CAST(NULLIF(stg.valor_desconto, '') AS NUMERIC),
			stg.periodicidade, stg.opcao_desconto, stg.aplicado_como
		FROM %[2]s stg
		JOIN %[3]s colab ON stg.colaborador_id_solides = colab.colaborador_id_solides
		JOIN %[4]s base ON colab.cpf = base.cpf`,
		s.qualify("fato_beneficios_api"),
		s.qualify("staging_beneficios_api"),
		s.qualify("staging_colaboradores"),
		s.qualify("dim_colaboradores_base"))

	if _, err := s.db.Exec(ctx, ins); err != nil {
		return fmt.Errorf("reloading benefits: %w", err)
	}
	return nil
}
