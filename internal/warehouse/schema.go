package warehouse

import (
	"context"
	"fmt"
)

// EnsureSchema creates the analytical schema and its durable tables. Every
// statement is idempotent; staging tables are recreated per load and are not
// handled here.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, s.schema),
		fmt.Sprintf(`CREATE EXTENSION IF NOT EXISTS unaccent WITH SCHEMA "%s"`, s.schema),

		// Master people dimension, keyed by CPF. Surrogate key 0 is the
		// catch-all for fact rows whose CPF never resolved.
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			colaborador_sk SERIAL PRIMARY KEY,
			nome_colaborador VARCHAR(255),
			cpf VARCHAR(20) UNIQUE,
			data_admissao_csv DATE,
			data_demissao_csv DATE,
			situacao_csv VARCHAR(100),
			departamento_csv VARCHAR(255),
			cargo_csv VARCHAR(255)
		)`, s.qualify("dim_colaboradores_base")),
		fmt.Sprintf(`INSERT INTO %s (colaborador_sk, nome_colaborador, cpf)
			VALUES (0, 'Desconhecido', 'N/A')
			ON CONFLICT (colaborador_sk) DO NOTHING`, s.qualify("dim_colaboradores_base")),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			fato_folha_id SERIAL PRIMARY KEY,
			colaborador_sk INTEGER REFERENCES %s (colaborador_sk),
			competencia DATE,
			nome_funcionario_csv VARCHAR(255),
			centro_de_custo VARCHAR(255),
			cargo_nome_csv VARCHAR(255),
			cpf_csv VARCHAR(20),
			situacao_csv VARCHAR(100),
			tipo_calculo_csv VARCHAR(100),
			salario_contratual NUMERIC(12, 2),
			total_proventos NUMERIC(12, 2),
			total_descontos NUMERIC(12, 2),
			valor_liquido NUMERIC(12, 2),
			base_inss NUMERIC(12, 2),
			base_fgts NUMERIC(12, 2),
			valor_fgts NUMERIC(12, 2),
			base_irrf NUMERIC(12, 2)
		)`, s.qualify("fato_folha_consolidada"), s.qualify("dim_colaboradores_base")),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			fato_rubrica_id SERIAL PRIMARY KEY,
			colaborador_sk INTEGER REFERENCES %s (colaborador_sk),
			competencia DATE,
			nome_funcionario_csv VARCHAR(255),
			centro_de_custo VARCHAR(255),
			cpf_csv VARCHAR(20),
			situacao_csv VARCHAR(100),
			tipo_calculo_csv VARCHAR(100),
			codigo_rubrica VARCHAR(100),
			nome_rubrica VARCHAR(255),
			tipo_rubrica VARCHAR(100),
			valor_rubrica NUMERIC(12, 2)
		)`, s.qualify("fato_folha_detalhada"), s.qualify("dim_colaboradores_base")),

		// Rich dimension fed by the HR API, keyed by the HR system's id.
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			colaborador_sk INTEGER PRIMARY KEY REFERENCES %s (colaborador_sk),
			colaborador_id_solides BIGINT UNIQUE NOT NULL,
			cpf VARCHAR(20),
			nome_completo VARCHAR(255),
			data_nascimento DATE,
			genero VARCHAR(50),
			data_admissao DATE,
			data_demissao DATE,
			motivo_demissao VARCHAR(255),
			ativo BOOLEAN,
			departamento_id_solides BIGINT,
			departamento_nome_api VARCHAR(255),
			cargo_id_solides BIGINT,
			cargo_nome_api VARCHAR(255),
			matricula VARCHAR(50),
			email VARCHAR(255),
			telefone_pessoal VARCHAR(50),
			celular VARCHAR(50),
			estado_civil VARCHAR(50),
			salario_api NUMERIC(12, 2),
			turno_trabalho VARCHAR(100),
			tipo_contrato VARCHAR(100),
			escolaridade VARCHAR(100),
			nivel_hierarquico VARCHAR(100),
			nome_lider_imediato VARCHAR(255),
			unidade_nome VARCHAR(255),
			etnia VARCHAR(50),
			pcd BOOLEAN,
			logradouro VARCHAR(255),
			numero_endereco VARCHAR(50),
			complemento_endereco VARCHAR(100),
			bairro VARCHAR(100),
			cidade VARCHAR(100),
			estado VARCHAR(50),
			cep VARCHAR(20),
			rg VARCHAR(50),
			pis VARCHAR(50),
			data_ultima_atualizacao TIMESTAMP DEFAULT current_timestamp
		)`, s.qualify("dim_colaboradores"), s.qualify("dim_colaboradores_base")),
		fmt.Sprintf(`INSERT INTO %s (colaborador_sk, colaborador_id_solides)
			VALUES (0, -1)
			ON CONFLICT (colaborador_sk) DO NOTHING`, s.qualify("dim_colaboradores")),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			beneficio_id SERIAL PRIMARY KEY,
			colaborador_sk INTEGER REFERENCES %s (colaborador_sk),
			tipo_beneficio VARCHAR(100),
			nome_beneficio VARCHAR(255),
			valor_beneficio NUMERIC(12, 2),
			valor_desconto NUMERIC(12, 2),
			periodicidade VARCHAR(50),
			opcao_desconto VARCHAR(50),
			aplicado_como VARCHAR(50),
			data_atualizacao TIMESTAMP DEFAULT current_timestamp
		)`, s.qualify("fato_beneficios_api"), s.qualify("dim_colaboradores_base")),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			data DATE PRIMARY KEY,
			ano INTEGER, mes INTEGER, dia INTEGER, trimestre INTEGER, semestre INTEGER,
			dia_da_semana INTEGER, nome_dia_da_semana VARCHAR(20),
			nome_mes VARCHAR(20), nome_mes_abrev CHAR(3), ano_mes VARCHAR(7),
			dia_do_ano INTEGER, semana_do_ano INTEGER
		)`, s.qualify("dim_calendario")),
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensuring warehouse schema: %w", err)
		}
	}
	s.logger.Info("warehouse schema verified", "schema", s.schema)
	return nil
}
